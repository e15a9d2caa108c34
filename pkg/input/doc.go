// Package input acquires puzzle input for a day.
//
// Example input lives in <dir>/day{N}_example and is always read from disk.
// Real input lives in <dir>/day{N}; when that file is missing it is fetched
// from the puzzle site with the user's session cookie and cached.
package input
