// Package engine runs one day.
//
// The engine moves through a fixed sequence of states:
//
//	Idle -> InputAcquired -> Parsed -> PartsRunning -> Done   (run mode)
//	Idle -> InputAcquired -> BenchRunning -> Done             (bench mode)
//
// In run mode every parse entry of the day populates its slot exactly once,
// then every part runs in its own goroutine. Output is written after all
// parts have joined, in ascending part order regardless of which part
// finished first. In bench mode the slots are never touched; each bench
// entry is timed against the raw text in turn.
//
// Every failure is returned as a coded error from pkg/errors. Slot misuse is
// a programming error and panics instead.
package engine
