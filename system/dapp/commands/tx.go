// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/jsonclient"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction results",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryTxCmd(),
		WaitTxCmd(),
	)
	return cmd
}

// QueryTxCmd query tx result
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the result of a transaction",
		Run:   queryTx,
	}
	cmd.Flags().StringP("txid", "t", "", "transaction id")
	cmd.MarkFlagRequired("txid")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	txid, _ := cmd.Flags().GetString("txid")
	var res types.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.QueryTx", &rpctypes.ReqTxID{Txid: txid}, &res)
	ctx.Run()
}

// WaitTxCmd wait for inclusion
func WaitTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until a transaction is in a block",
		Run:   waitTx,
	}
	cmd.Flags().StringP("txid", "t", "", "transaction id")
	cmd.MarkFlagRequired("txid")
	cmd.Flags().Int64P("timeout", "w", 30, "seconds")
	return cmd
}

func waitTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	txid, _ := cmd.Flags().GetString("txid")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	var res types.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.WaitTx", &rpctypes.ReqWaitTx{Txid: txid, Timeout: timeout}, &res)
	ctx.Run()
}
