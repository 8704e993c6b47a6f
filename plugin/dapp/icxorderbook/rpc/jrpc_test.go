// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"errors"
	"testing"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/client/mocks"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const owner = "14ZTV2wHG3uPHnA5cBJmNxAxxvbjS7Z5mE"

func newTestJrpc(api *mocks.API) *Jrpc {
	cli := newChannelClient()
	cli.API = api
	return &Jrpc{cli: cli}
}

func decodeAction(t *testing.T, tx *types.Transaction) *ty.IcxAction {
	var action ty.IcxAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	return &action
}

func TestCreateOrder(t *testing.T) {
	api := new(mocks.API)
	j := newTestJrpc(api)
	var sent *types.Transaction
	api.On("Submit", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(*types.Transaction)
	}).Return("txid1", nil)

	var reply rpctypes.ReplyTxID
	assert.Equal(t, types.ErrInvalidParam, j.CreateOrder(nil, &reply))

	err := j.CreateOrder(&ty.CreateOrderReq{
		TokenFrom: "DFI", ChainTo: "BTC", OwnerAddress: owner,
		AmountFrom: "15", OrderPrice: "0.01",
	}, &reply)
	require.NoError(t, err)
	assert.Equal(t, "txid1", reply.Txid)
	assert.Equal(t, owner, sent.From())
	assert.Equal(t, ty.IcxX, string(sent.Execer))
	action := decodeAction(t, sent)
	assert.Equal(t, int32(ty.IcxActionCreateOrder), action.Ty)
	assert.Equal(t, 15*types.Coin, action.CreateOrder.AmountFrom)
	assert.Equal(t, types.Coin/100, action.CreateOrder.OrderPrice)

	err = j.CreateOrder(&ty.CreateOrderReq{OwnerAddress: owner, AmountFrom: "1.123456789", OrderPrice: "1"}, &reply)
	assert.ErrorIs(t, err, types.ErrAmount)
	api.AssertNumberOfCalls(t, "Submit", 1)
}

func TestSubmitAndClose(t *testing.T) {
	api := new(mocks.API)
	j := newTestJrpc(api)
	var sent []*types.Transaction
	api.On("Submit", mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*types.Transaction))
	}).Return("txid", nil)

	var reply rpctypes.ReplyTxID
	require.NoError(t, j.MakeOffer(&ty.MakeOfferReq{OrderTx: "o", Amount: "0.1", OwnerAddress: owner}, &reply))
	require.NoError(t, j.SubmitDFCHTLC(&ty.SubmitDFCHTLCReq{From: owner, OfferTx: "of", Amount: "10", Hash: "h"}, &reply))
	require.NoError(t, j.SubmitExtHTLC(&ty.SubmitExtHTLCReq{From: owner, OfferTx: "of", Amount: "0.1", Hash: "h", Timeout: 24}, &reply))
	require.NoError(t, j.ClaimDFCHTLC(&ty.ClaimDFCHTLCReq{From: owner, DfchtlcTx: "d", Seed: "s"}, &reply))
	require.NoError(t, j.CloseOffer(&ty.CloseOfferReq{From: owner, OfferTx: "of"}, &reply))
	require.NoError(t, j.CloseOrder(&ty.CloseOrderReq{From: owner, OrderTx: "o"}, &reply))
	require.Len(t, sent, 6)

	names := []string{"icxMakeOffer", "icxSubmitDFCHTLC", "icxSubmitExtHTLC", "icxClaimDFCHTLC", "icxCloseOffer", "icxCloseOrder"}
	for i, tx := range sent {
		assert.Equal(t, names[i], ty.ActionName(tx))
	}
	assert.Equal(t, int64(24), decodeAction(t, sent[2]).SubmitExtHTLC.Timeout)
	assert.NotEqual(t, sent[4].TxID(), sent[5].TxID())
}

func TestSubmitError(t *testing.T) {
	api := new(mocks.API)
	j := newTestJrpc(api)
	api.On("Submit", mock.Anything).Return("", errors.New("mempool full"))
	var reply rpctypes.ReplyTxID
	err := j.CloseOrder(&ty.CloseOrderReq{From: owner, OrderTx: "o"}, &reply)
	assert.EqualError(t, err, "mempool full")
	assert.Empty(t, reply.Txid)
}

func TestQueries(t *testing.T) {
	api := new(mocks.API)
	j := newTestJrpc(api)
	orders := &ty.ReplyListOrders{Orders: map[string]*ty.OrderView{"o": {Status: "OPEN"}}}
	api.On("Query", ty.IcxX, ty.FuncListOrders, mock.Anything).Return(orders, nil)
	api.On("Query", ty.IcxX, ty.FuncGetOrder, mock.Anything).Return(nil, ty.ErrOrderNotFound)
	htlcs := &ty.ReplyListHTLCs{HTLCs: map[string]*ty.HTLCView{}}
	api.On("Query", ty.IcxX, ty.FuncListHTLCs, mock.Anything).Return(htlcs, nil)

	var reply ty.ReplyListOrders
	require.NoError(t, j.ListOrders(&ty.ReqListOrders{}, &reply))
	assert.Equal(t, "OPEN", reply.Orders["o"].Status)
	assert.Equal(t, ty.ErrOrderNotFound, j.GetOrder(&types.ReqString{Data: "x"}, &reply))

	var hreply ty.ReplyListHTLCs
	require.NoError(t, j.ListHTLCs(&ty.ReqListHTLCs{OfferTx: "of"}, &hreply))
	assert.NotNil(t, hreply.HTLCs)
	assert.Equal(t, types.ErrInvalidParam, j.ListHTLCs(nil, &hreply))
}
