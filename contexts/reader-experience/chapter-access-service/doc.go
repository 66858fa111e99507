// Package chapteraccessservice implements the gated chapter-read decision
// inside the reader-experience context.
//
// A single read flows through one decision matrix: free content is served to
// anyone, VIP content requires either the USERVIP role or a ruby debit, and
// every served read awards points and records a view. The ruby check, the
// debit, the point award and the view recording are serialized per user so
// two concurrent reads cannot both pass a stale balance check.
package chapteraccessservice
