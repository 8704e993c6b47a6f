// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/spf13/cobra"
)

// PluginBase plugin fields, nil hooks are skipped
type PluginBase struct {
	Name     string
	ExecName string
	RPC      func(name string, s rpctypes.RPCServer)
	Exec     func(name string, cfg *types.Config)
	Cmd      func() *cobra.Command
}

// GetName package name
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName executor name
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec register the executor
func (p *PluginBase) InitExec(cfg *types.Config) {
	if p.Exec != nil {
		p.Exec(p.ExecName, cfg)
	}
}

// AddCmd add the plugin command to rootCmd
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}

// AddRPC register the plugin rpc service
func (p *PluginBase) AddRPC(c rpctypes.RPCServer) {
	if p.RPC != nil {
		p.RPC(p.GetExecutorName(), c)
	}
}
