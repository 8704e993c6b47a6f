// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icxorderbook 原生资产与 BTC 的原子交换挂单插件
package icxorderbook

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/commands"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/executor"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/rpc"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ty.IcxX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.IcxCmd,
		RPC:      rpc.Init,
	})
}
