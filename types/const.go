// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// amount scale, every balance and price carries 8 fractional digits
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

// native asset and supported foreign chains
const (
	DFI = "DFI"
	BTC = "BTC"
)

//exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log type for account operations
const (
	TyLogErr          = 1
	TyLogFee          = 2
	TyLogTransfer     = 3
	TyLogGenesis      = 4
	TyLogDeposit      = 5
	TyLogExecFrozen   = 6
	TyLogExecActive   = 7
	TyLogTransFrozen  = 8
	TyLogAssetCreate  = 9
	TyLogModifyConfig = 410
)

// list direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

// ManagerX manage executor name
const ManagerX = "manage"
