// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrInputPara         = errors.New("ErrInputPara")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrExecNotFound      = errors.New("ErrExecNotFound")
	ErrExecNameNotAllow  = errors.New("ErrExecNameNotAllow")
	ErrAmount            = errors.New("ErrAmount")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrFromAddr          = errors.New("ErrFromAddr")
	ErrNoPrivilege       = errors.New("ErrNoPrivilege")
	ErrAssetExist        = errors.New("ErrAssetExist")
	ErrAssetNotExist     = errors.New("ErrAssetNotExist")
	ErrTxDup             = errors.New("ErrTxDup")
	ErrMemFull           = errors.New("ErrMemFull")
	ErrEmptyTx           = errors.New("ErrEmptyTx")
	ErrTxNotExist        = errors.New("ErrTxNotExist")
	ErrDecode            = errors.New("ErrDecode")
	ErrTimeout           = errors.New("ErrTimeout")
	ErrChainClosed       = errors.New("ErrChainClosed")
	ErrBadConfigKey      = errors.New("ErrBadConfigKey")
	ErrBadConfigValue    = errors.New("ErrBadConfigValue")
	ErrInvalidBlockchain = errors.New("ErrInvalidBlockchain")
)
