// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 管理插件命令
package commands

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/jsonclient"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	pty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/spf13/cobra"
)

// ConfigCmd config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Governance parameters",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		ConfigTxCmd(),
		QueryConfigCmd(),
	)

	return cmd
}

// ConfigTxCmd config transaction
func ConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config_tx",
		Short: "set or delete a governance parameter",
		Run:   configTx,
	}
	addConfigTxFlags(cmd)
	return cmd
}

func addConfigTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config_key", "c", "", "config key string")
	cmd.MarkFlagRequired("config_key")

	cmd.Flags().StringP("operation", "o", pty.OpSet, "set or delete")

	cmd.Flags().StringP("value", "v", "", "decimal value")

	cmd.Flags().StringP("from", "f", "", "super manager address")
	cmd.MarkFlagRequired("from")
}

func configTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	key, _ := cmd.Flags().GetString("config_key")
	op, _ := cmd.Flags().GetString("operation")
	value, _ := cmd.Flags().GetString("value")
	from, _ := cmd.Flags().GetString("from")

	params := &rpctypes.ReqSetGov{From: from, Key: key, Value: value, Op: op}
	var res rpctypes.ReplyTxID
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.SetGov", params, &res)
	ctx.Run()
}

// QueryConfigCmd  query config
func QueryConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_config",
		Short: "Query config item",
		Run:   queryConfig,
	}
	addQueryConfigFlags(cmd)
	return cmd
}

func addQueryConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "key string")
	cmd.MarkFlagRequired("key")
}

func queryConfig(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	key, _ := cmd.Flags().GetString("key")
	params := &rpctypes.ReqParam{Name: key}
	var res rpctypes.ReplyParam
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetParam", params, &res)
	ctx.Run()
}
