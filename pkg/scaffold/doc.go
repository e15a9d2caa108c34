// Package scaffold creates day packages and keeps the bootstrap file that
// links them into the binary up to date.
//
// Day modules register themselves from init(), so the binary only has to
// import them. days/days.go holds one blank import per days/dayNN
// directory; Generate rewrites it from the directory listing and is run by
// `go generate ./...` through cmd/aocgen as well as by `aoc new`.
package scaffold
