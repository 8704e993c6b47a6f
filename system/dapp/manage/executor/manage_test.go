// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	mty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	manager = "14ZTV2wHG3uPHnA5cBJmNxAxxvbjS7Z5mE"
	other   = "1HmcUkv5eWr1x2xHe8YBSPRQEW8RuCvM8X"
)

func newTestManage(t *testing.T) *Manage {
	backend, err := dbm.NewGoMemDB("manage", "", 0)
	require.NoError(t, err)
	m := newManage().(*Manage)
	m.SetStateDB(dbm.NewStateDB(backend))
	m.SetConfig(&types.Config{SuperManager: []string{manager}})
	m.SetEnv(1, 0)
	return m
}

func modifyTx(from, key, value, op string) *types.Transaction {
	return types.CreateTx(mty.ManageX, mty.NewModifyAction(key, value, op), from, 0)
}

func TestModifyConfig(t *testing.T) {
	m := newTestManage(t)

	receipt, err := m.Exec(modifyTx(manager, "ICX_TAKERFEE_PER_BTC", "0.001", mty.OpSet), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int32(mty.TyLogModifyConfig), receipt.Logs[0].Ty)
	var log types.ReceiptConfig
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log))
	assert.Equal(t, "", log.Prev.Value)
	assert.Equal(t, "0.001", log.Current.Value)

	value, err := GetGovParam(m.GetStateDB(), "ICX_TAKERFEE_PER_BTC")
	require.NoError(t, err)
	assert.Equal(t, "0.001", value)

	reply, err := m.Query("GetConfigItem", types.Encode(&types.ReqString{Data: "ICX_TAKERFEE_PER_BTC"}))
	require.NoError(t, err)
	assert.Equal(t, "0.001", reply.(*mty.ReplyConfig).Value)

	_, err = m.Exec(modifyTx(manager, "ICX_TAKERFEE_PER_BTC", "", mty.OpDelete), 1)
	require.NoError(t, err)
	_, err = GetGovParam(m.GetStateDB(), "ICX_TAKERFEE_PER_BTC")
	assert.Equal(t, types.ErrNotFound, err)
}

func TestModifyConfigRejected(t *testing.T) {
	m := newTestManage(t)
	_, err := m.Exec(modifyTx(other, "DFI_PER_BTC", "1000", mty.OpSet), 0)
	assert.Equal(t, mty.ErrNoPrivilege, err)
	_, err = m.Exec(modifyTx(manager, "", "1000", mty.OpSet), 0)
	assert.Equal(t, mty.ErrBadConfigKey, err)
	_, err = m.Exec(modifyTx(manager, "DFI_PER_BTC", "abc", mty.OpSet), 0)
	assert.Equal(t, mty.ErrBadConfigValue, err)
	_, err = m.Exec(modifyTx(manager, "DFI_PER_BTC", "1", "add"), 0)
	assert.Equal(t, mty.ErrBadConfigOp, err)

	tx := types.CreateTx(mty.ManageX, &mty.ManageAction{Ty: 9}, manager, 0)
	_, err = m.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	_, err = m.Query("Nope", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestGenesisGov(t *testing.T) {
	m := newTestManage(t)
	_, err := GenesisGov(m.GetStateDB(), "DFI_PER_BTC", "1000")
	require.NoError(t, err)
	value, err := GetGovParam(m.GetStateDB(), "DFI_PER_BTC")
	require.NoError(t, err)
	assert.Equal(t, "1000", value)
	_, err = GenesisGov(m.GetStateDB(), "DFI_PER_BTC", "-1")
	assert.Equal(t, mty.ErrBadConfigValue, err)
	assert.True(t, IsSuperManager(m.GetConfig(), manager))
	assert.False(t, IsSuperManager(nil, manager))
}
