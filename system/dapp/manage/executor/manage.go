// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
manage 负责管理配置
 1. 超级管理员修改治理参数
 1. 参数值为定点小数，由其它执行器读取
*/

import (
	drivers "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp"
	mty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var (
	clog       = log.New("module", "execs.manage")
	driverName = mty.ManageX
)

// Init register the driver
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newManage, 0)
}

// GetName executor name
func GetName() string {
	return newManage().GetName()
}

// Manage governance executor
type Manage struct {
	drivers.DriverBase
}

func newManage() drivers.Driver {
	c := &Manage{}
	c.SetChild(c)
	return c
}

// GetDriverName driver name
func (c *Manage) GetDriverName() string {
	return driverName
}

// IsSuperManager addr is listed in superManager
func IsSuperManager(cfg *types.Config, addr string) bool {
	if cfg == nil {
		return false
	}
	for _, m := range cfg.SuperManager {
		if addr == m {
			return true
		}
	}
	return false
}

// Exec dispatch on the action type
func (c *Manage) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action mty.ManageAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	clog.Debug("manage.Exec", "ty", action.Ty, "index", index)
	switch action.Ty {
	case mty.ManageActionModifyConfig:
		if action.Modify == nil {
			return nil, types.ErrInvalidParam
		}
		return newAction(c, tx).modifyConfig(action.Modify)
	}
	return nil, types.ErrActionNotSupport
}
