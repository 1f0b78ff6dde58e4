// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "meme-cli" implements the registry client operation interface.
package main

import (
	"fmt"
	"os"

	"github.com/AlphyonAlephium/memeprotocol/cmd/meme-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meme-cli failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
