// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pce builds polynomial chaos expansions of random variables.
//
// Usage:
//
//	pce basis -m beta --alpha 2 --beta 5 -d 4
//	pce coeffs -d 6 --param meanstd 2.0 0.2
//	pce sample -d 6 --n 100000 --density 2.0 0.2
//	pce run scenario.yaml
//
// The --format json flag switches every command to JSON output.
package main

import (
	"os"

	"github.com/aclements/go-chaos/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
