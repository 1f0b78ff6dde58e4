// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listStartAfter string
	listLimit      int
)

func init() {
	tokensCmd.Flags().StringVar(&listStartAfter, "start-after", "", "exclusive symbol lower bound")
	tokensCmd.Flags().IntVar(&listLimit, "limit", 0, "page size (0 = default)")
}

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "print the daemon's genesis parameters",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		g, err := client().Genesis(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("templateCodeId: %d\ncreationFee: %d\n", g.TemplateCodeID, g.CreationFee)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "print the current registry configuration",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		cfg, err := client().Config(ctx)
		if err != nil {
			return err
		}
		fmt.Printf(
			"owner: %s\ntemplateCodeId: %d\ncreationFee: %d\n",
			cfg.Owner, cfg.TemplateCodeID, cfg.CreationFee,
		)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [symbol]",
	Short: "print one token record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		t, err := client().Token(ctx, args[0])
		if err != nil {
			return err
		}
		printToken(t.Symbol, t.Name, t.Address, t.Creator, t.CreatedAt, t.Deployed)
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "list token records in ascending symbol order",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tokens, err := client().Tokens(ctx, listStartAfter, listLimit)
		if err != nil {
			return err
		}
		for _, t := range tokens {
			printToken(t.Symbol, t.Name, t.Address, t.Creator, t.CreatedAt, t.Deployed)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "print the finalized-registration count",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		total, err := client().Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("totalTokens: %d\n", total)
		return nil
	},
}

func printToken(symbol, name, address, creator string, createdAt int64, deployed bool) {
	status := "pending"
	if deployed {
		status = address
	}
	fmt.Printf("%s (%s): %s creator=%s createdAt=%d\n", symbol, name, status, creator, createdAt)
}
