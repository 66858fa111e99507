// Package readinglistservice implements a reader's personal collections
// inside the reader-experience context: the bounded recency history, the
// saved list and the likes list.
//
// History keeps at most one entry per comic and evicts the oldest entry past
// the cap. Saved and likes carry set semantics (duplicate adds are no-ops),
// and likes keep the comic's denormalized like counter in sync within the
// same operation.
package readinglistservice
