// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands node level client commands
package commands

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/jsonclient"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account balances",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(BalanceCmd())
	return cmd
}

// BalanceCmd get balance
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get free and frozen balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("asset", "s", types.DFI, "asset symbol")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	asset, _ := cmd.Flags().GetString("asset")
	params := &rpctypes.ReqAddrAsset{Addr: addr, Asset: asset}
	var res rpctypes.ReplyBalance
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetBalance", params, &res)
	ctx.Run()
}
