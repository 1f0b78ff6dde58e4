// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/consts"
	"github.com/AlphyonAlephium/memeprotocol/host"
)

var (
	tokenName        string
	tokenSymbol      string
	tokenSupply      uint64
	tokenImageURL    string
	tokenDescription string

	newOwner  string
	newCodeID uint64
	newFee    uint64
)

func init() {
	createTokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	createTokenCmd.Flags().StringVar(&tokenSymbol, "symbol", "", "unique token symbol")
	createTokenCmd.Flags().Uint64Var(&tokenSupply, "supply", 0, "total supply (base units)")
	createTokenCmd.Flags().StringVar(&tokenImageURL, "image-url", "", "token image url")
	createTokenCmd.Flags().StringVar(&tokenDescription, "description", "", "token description")

	updateConfigCmd.Flags().StringVar(&newOwner, "owner", "", "new owner address")
	updateConfigCmd.Flags().Uint64Var(&newCodeID, "template-code-id", 0, "new template code id")
	updateConfigCmd.Flags().Uint64Var(&newFee, "creation-fee", 0, "new creation fee")
}

var createTokenCmd = &cobra.Command{
	Use:   "create-token",
	Short: "register a new token and pay the creation fee",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		cli := client()
		cfg, err := cli.Config(ctx)
		if err != nil {
			return err
		}
		result, err := cli.Submit(ctx, actor, []host.Coin{{
			Denom:  consts.FeeDenom,
			Amount: cfg.CreationFee,
		}}, &actions.CreateToken{
			Name:        tokenName,
			Symbol:      tokenSymbol,
			TotalSupply: tokenSupply,
			ImageURL:    tokenImageURL,
			Description: tokenDescription,
		})
		if err != nil {
			return err
		}
		for _, addr := range result.Deployed {
			fmt.Printf("deployed %s at %s\n", tokenSymbol, addr)
		}
		return nil
	},
}

var updateConfigCmd = &cobra.Command{
	Use:   "update-config",
	Short: "overwrite registry configuration fields (owner only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		update := &actions.UpdateConfig{}
		if cmd.Flags().Changed("owner") {
			update.Owner = &newOwner
		}
		if cmd.Flags().Changed("template-code-id") {
			update.TemplateCodeID = &newCodeID
		}
		if cmd.Flags().Changed("creation-fee") {
			update.CreationFee = &newFee
		}
		if _, err := client().Submit(ctx, actor, nil, update); err != nil {
			return err
		}
		fmt.Println("config updated")
		return nil
	},
}
