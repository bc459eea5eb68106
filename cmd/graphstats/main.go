// SPDX-License-Identifier: MIT

// Command graphstats runs spectral embedding, vertex nomination, model
// estimation, seeded graph matching and network simulation from the shell.
//
// Usage:
//
//	graphstats embed    --input net.csv --dimension 2
//	graphstats nominate --input net.csv --seeds 0,4,7 --k 5
//	graphstats estimate --input net.csv --model sbm --labels z.txt
//	graphstats match    --a a.csv --b b.csv --seed-pairs seeds.txt
//	graphstats simulate --model er --n 100 --p 0.1 --output csv
//
// Results go to stdout as JSON (default), YAML or, for matrices, CSV.
// Logs go to stderr.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
