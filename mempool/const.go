// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mempool

import (
	"errors"

	log "github.com/inconshreveable/log15"
)

var (
	mlog                     = log.New("module", "mempool")
	mempoolAddedTxSize       = 102400 // 已打包交易的缓存大小
	maxTxNumPerAccount int64 = 100    // 每个账户在mempool中最大交易数量
)

// ErrManyTx too many pending transactions from one address
var ErrManyTx = errors.New("ErrManyTx")
