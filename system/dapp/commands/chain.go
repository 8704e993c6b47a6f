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

// ChainCmd chain command
func ChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Chain status",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(HeightCmd())
	return cmd
}

// HeightCmd last block height
func HeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Get height of the last block",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res types.Int64
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetHeight", &rpctypes.ReqNil{}, &res)
			ctx.Run()
		},
	}
}
