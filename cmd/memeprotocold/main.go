// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "memeprotocold" runs the token-issuance registry with its embedded
// host loop and serves the JSON-RPC query surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	genesisPath string

	rootCmd = &cobra.Command{
		Use:        "memeprotocold",
		Short:      "memeprotocol registry daemon",
		SuggestFor: []string{"memeprotocold", "memed"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"daemon config file path",
	)
	runCmd.PersistentFlags().StringVar(
		&genesisPath,
		"genesis",
		"",
		"genesis file path",
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "memeprotocold failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
