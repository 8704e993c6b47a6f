// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// AssetKey state key of a registered asset
func AssetKey(symbol string) []byte {
	return []byte("mavl-asset-create-" + symbol)
}

// AssetExists true if symbol was registered
func AssetExists(db dbm.KV, symbol string) bool {
	if symbol == "" {
		return false
	}
	_, err := db.Get(AssetKey(symbol))
	return err == nil
}

// RegisterAsset add symbol to the asset registry
func RegisterAsset(db dbm.KV, symbol string, height int64) (*types.Receipt, error) {
	if symbol == "" || strings.ContainsRune(symbol, '-') || strings.ToUpper(symbol) != symbol {
		return nil, types.ErrInvalidParam
	}
	if AssetExists(db, symbol) {
		return nil, types.ErrAssetExist
	}
	create := &types.ReceiptAssetCreate{Symbol: symbol, Height: height}
	kv := &types.KeyValue{Key: AssetKey(symbol), Value: types.Encode(create)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{{Ty: types.TyLogAssetCreate, Log: types.Encode(create)}},
	}, nil
}
