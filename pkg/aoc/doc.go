// Package aoc is the authoring surface for day modules.
//
// A day module declares one parse stage and up to two parts from its
// init() function. The constructors in this package leave the user's
// functions untouched and wrap them into adapters with one calling
// convention, then submit those adapters to the registry:
//
//	var day = aoc.Day(1)
//
//	func init() {
//		steps := aoc.ParseLine(day, parseDirection)
//		aoc.Part(steps, aoc.One, countZeros)
//		aoc.Part(steps, aoc.Two, countPassesOverZero)
//	}
//
// Every parse and part function returns (T, error). Parse modes:
//
//	ParseText   whole input text           -> T
//	ParseLine   applied to every line      -> []T, input order
//	ParseLines  line sequence passed once  -> T
//	Raw         no parse stage             -> string
//
// A part whose parse stage produces Tuple2 or Tuple3 binds one argument per
// field with Part2 and Part3.
//
// Each part yields two adapters. The run adapter reads the day's
// single-assignment slot, which the engine fills exactly once before any
// part starts. The bench adapter calls the canonical parse function on the
// text it is given every time, so parse cost is part of what a benchmark
// measures. Parts may run concurrently and must treat their arguments as
// read-only.
package aoc
