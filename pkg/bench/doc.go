// Package bench times bench adapters.
//
// A run has two phases. Warm-up calls the adapter repeatedly until the
// configured warm-up time elapses and uses the observed cost to size the
// samples. Measurement then collects Samples samples, each the mean time
// of a fixed number of back-to-back iterations, so that the whole phase
// takes roughly the configured measurement time. Every iteration hands the
// adapter the raw input text, which means parsing is part of what gets
// measured.
//
// Summary statistics (mean, standard deviation, median, extremes and a
// normal-approximation confidence interval for the mean) are computed with
// github.com/montanaflynn/stats.
package bench
