// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 管理插件相关的定义
package types

// ManageAction payload of a manage transaction
type ManageAction struct {
	Ty     int32         `json:"ty"`
	Modify *ModifyConfig `json:"modify,omitempty"`
}

// ModifyConfig set or delete one governance parameter
type ModifyConfig struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Op    string `json:"op"`
}

// ReplyConfig query reply
type ReplyConfig struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewModifyAction helper for clients
func NewModifyAction(key, value, op string) *ManageAction {
	return &ManageAction{
		Ty:     ManageActionModifyConfig,
		Modify: &ModifyConfig{Key: key, Value: value, Op: op},
	}
}
