// Package registry provides the process-wide, append-only collection of
// day components. Day modules submit descriptors from their init()
// functions; the engine queries them by variant once startup is over.
//
// Three descriptor variants exist:
//
//	ParseEntry  populates a day's slot from raw input
//	PartEntry   zero-argument run adapter reading the slot
//	BenchEntry  text -> string adapter that parses fresh on every call
//
// The registry keeps insertion order and performs no de-duplication.
// Ordering by part number is the caller's job.
package registry
