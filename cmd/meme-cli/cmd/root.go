// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AlphyonAlephium/memeprotocol/rpc"
)

const requestTimeout = 30 * time.Second

var (
	endpoint string
	actor    string

	rootCmd = &cobra.Command{
		Use:        "meme-cli",
		Short:      "memeprotocol CLI",
		SuggestFor: []string{"meme-cli", "memecli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(
		&endpoint,
		"endpoint",
		"http://127.0.0.1:9650",
		"registry daemon URI",
	)
	rootCmd.PersistentFlags().StringVar(
		&actor,
		"actor",
		"",
		"account submitting the call",
	)
	rootCmd.AddCommand(
		createTokenCmd,
		updateConfigCmd,

		genesisCmd,
		configCmd,
		tokenCmd,
		tokensCmd,
		statsCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func client() *rpc.JSONRPCClient {
	return rpc.NewJSONRPCClient(endpoint)
}
