// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ManageX executor name
var ManageX = "manage"

// ManageActionModifyConfig manager action
const (
	ManageActionModifyConfig = iota
)

// TyLogModifyConfig log
const (
	TyLogModifyConfig = 410
)

// OpSet config op
const (
	OpSet    = "set"
	OpDelete = "delete"
)
