// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manage manage负责管理配置的插件
// 1. 超级管理员修改治理参数
// 2. 其它执行器通过 GetGovParam 读取
package manage

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/pluginmgr"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/commands"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/executor"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.ManageX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.ConfigCmd,
		RPC:      nil,
	})
}
