// Package comiccatalogservice owns comic and chapter records inside the
// catalog context.
//
// Comic creation provisions the comic's view record through the
// reader-experience view-tracking module, keeping the two lifecycles 1:1.
// Chapters belong to exactly one comic and resolve gated access through the
// parent comic's vip flag.
package comiccatalogservice
