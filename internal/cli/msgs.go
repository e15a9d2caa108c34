package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Run Advent of Code solutions"
	MsgRunShort       = "Solve a day and print the answers"
	MsgBenchShort     = "Benchmark the parts of a day"
	MsgNewShort       = "Create a new day package"
	MsgNewLong        = "New creates days/dayNN/dayNN.go from a template and regenerates days/days.go so the next build links it in."
	MsgListShort      = "List the days linked into this binary"
	MsgGenConfigShort = "Print the effective configuration as TOML"
	MsgGenConfigLong  = "Output the effective configuration to stdout, or write it to aoc.toml with -w. The session token is never written."
	MsgVersionShort   = "Print version information"
	MsgManShort       = "Generate man page"

	// Status messages
	MsgExamplePrompt  = "No example input found for day %d.\nPaste example input, then press Enter followed by Ctrl+D:\n---\n"
	MsgExampleSaved   = "---\nSaved example to %s\n"
	MsgDayCreated     = "Created %s"
	MsgRebuildHint    = "Rebuild aoc to include it."
	MsgNoDays         = "No days registered."
	MsgConfigWritten  = "Wrote %s"
	MsgVersionFormat  = "aoc version %s\n"
	MsgCommitFormat   = "Commit: %s\n"
	MsgBuiltFormat    = "Built:  %s\n"
	MsgYes            = "yes"
	MsgNo             = "no"
	MsgListHeaderDay  = "Day"
	MsgListHeaderPart = "Parts"
	MsgListHeaderEx   = "Example"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Read configuration from this TOML file"
	MsgFlagExample     = "Use the example input instead of the real input"
	MsgFlagWarmUp      = "Warm-up time per part"
	MsgFlagMeasurement = "Measurement time per part"
	MsgFlagSamples     = "Number of samples per part"
	MsgFlagConfidence  = "Confidence level of the reported interval"
	MsgFlagFormat      = "Report format (auto, term, text, json, yaml)"
	MsgFlagWrite       = "Write the configuration to aoc.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/bench-long.txt
	msgBenchLongRaw string
	MsgBenchLong    = strings.TrimSpace(msgBenchLongRaw)

	//go:embed msgs/bench-example.txt
	msgBenchExampleRaw string
	MsgBenchExample    = strings.TrimRight(msgBenchExampleRaw, "\n")
)
