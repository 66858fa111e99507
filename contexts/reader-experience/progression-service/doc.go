// Package progressionservice implements the reader progression engine inside
// the reader-experience context.
//
// The module owns cumulative reading points, level resolution against the
// static level table, ruby balance movements (level-up bonuses and debits),
// and achievement grants. It keeps business rules in application/domain
// layers and isolates infrastructure concerns behind ports and adapters.
package progressionservice
