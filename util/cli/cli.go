// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	clog "github.com/BirthdayResearch/jellyfishsdk-sub005/common/log"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/pluginmgr"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/commands"
	"github.com/spf13/cobra"
)

// RootCmd client command tree, plugin commands included
func RootCmd(name, rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   name,
		Short: "ICX order book client tools",
	}
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.ChainCmd(),
		commands.TxCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

// Run execute the client
func Run(name, rpcAddr string) {
	clog.SetLogLevel("error")
	if err := RootCmd(name, rpcAddr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
