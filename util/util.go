// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util genesis setup, test fixtures and small helpers
package util

import (
	"encoding/json"
	"fmt"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/common"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/btcsuite/btcd/btcec/v2"
	log "github.com/inconshreveable/log15"
)

var ulog = log.New("module", "util")

// ResetDatadir 重写datadir
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log != nil && cfg.Log.LogFile != "" {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}

// Genaddress new random key, returns the native address and the compressed
// public key hex
func Genaddress() (string, string) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	pub := priv.PubKey().SerializeCompressed()
	return address.PubKeyToAddr(pub), common.Bytes2Hex(pub)
}

// SaveKVList 保存kvs to database
func SaveKVList(kvdb db.DB, kvs []*types.KeyValue) {
	batch := kvdb.NewBatch(true)
	for i := 0; i < len(kvs); i++ {
		if kvs[i].Value == nil {
			batch.Delete(kvs[i].Key)
			continue
		}
		batch.Set(kvs[i].Key, kvs[i].Value)
	}
	err := batch.Write()
	if err != nil {
		panic(err)
	}
}

// PrintKV 打印KVList
func PrintKV(kvs []*types.KeyValue) {
	for i := 0; i < len(kvs); i++ {
		fmt.Printf("KV %d %s(%s)\n", i, string(kvs[i].Key), common.ToHex(kvs[i].Value))
	}
}

// JSONPrint log v as indented json
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		t.Error(err)
		return
	}
	t.Log(string(data))
}
