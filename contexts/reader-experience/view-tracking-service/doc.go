// Package viewtrackingservice implements rolling time-windowed view counting
// inside the reader-experience context.
//
// Each comic owns exactly one view record holding a lifetime total and three
// calendar-bucketed sequences (daily, weekly, monthly). The module owns
// bucket upsert rules and record lifecycle; storage sits behind ports.
package viewtrackingservice
