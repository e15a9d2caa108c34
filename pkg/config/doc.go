// Package config handles configuration management for the aoc runner.
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user file, $XDG_CONFIG_HOME/aoc/config.toml
//  3. project file, aoc.toml in the project directory
//  4. an explicit file given with --config
//  5. AOC_* environment variables (AOC_BENCH_WARM_UP -> bench.warm_up)
//  6. command-line overrides
package config
