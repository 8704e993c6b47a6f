// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	mty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// Query GetConfigItem
func (c *Manage) Query(funcName string, params []byte) (types.Message, error) {
	if funcName != "GetConfigItem" {
		return c.DriverBase.Query(funcName, params)
	}
	var in types.ReqString
	if err := types.Decode(params, &in); err != nil {
		return nil, err
	}
	value, err := GetGovParam(c.GetStateDB(), in.Data)
	if err != nil && err != types.ErrNotFound {
		clog.Error("GetConfigItem", "key", in.Data, "err", err)
		return nil, err
	}
	return &mty.ReplyConfig{Key: in.Data, Value: value}, nil
}
