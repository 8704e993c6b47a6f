// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
icxorderbook 执行器: 原生资产与 BTC 的原子交换挂单

交易:
 1. createOrder / closeOrder     挂单与撤单
 1. makeOffer / closeOffer       吃单与撤销
 1. submitDFCHTLC / submitExtHTLC / claimDFCHTLC  两侧 HTLC 与领取

每个区块开始时 BeginBlock 按高度清理过期的挂单、吃单和 HTLC。
*/

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	drivers "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
	metrics "github.com/rcrowley/go-metrics"
)

var (
	xlog       = log.New("module", "execs.icxorderbook")
	driverName = ty.IcxX

	ordersCreated = metrics.GetOrRegisterCounter("icx/orders/created", nil)
	offersCreated = metrics.GetOrRegisterCounter("icx/offers/created", nil)
	htlcsClaimed  = metrics.GetOrRegisterCounter("icx/htlcs/claimed", nil)
	htlcsRefunded = metrics.GetOrRegisterCounter("icx/htlcs/refunded", nil)
	expired       = metrics.GetOrRegisterCounter("icx/expired", nil)
)

// Init register the driver
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newIcx, 0)
}

// GetName executor name
func GetName() string {
	return newIcx().GetName()
}

// ICX order book executor
type ICX struct {
	drivers.DriverBase
}

func newIcx() drivers.Driver {
	c := &ICX{}
	c.SetChild(c)
	return c
}

// GetDriverName driver name
func (icx *ICX) GetDriverName() string {
	return driverName
}

// Exec dispatch on the action type
func (icx *ICX) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action ty.IcxAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	xlog.Debug("icx exec", "action", ty.ActionName(tx), "txid", tx.TxID(), "index", index)
	a := newIcxDB(icx, tx)
	switch {
	case action.Ty == ty.IcxActionCreateOrder && action.CreateOrder != nil:
		return a.createOrder(action.CreateOrder)
	case action.Ty == ty.IcxActionMakeOffer && action.MakeOffer != nil:
		return a.makeOffer(action.MakeOffer)
	case action.Ty == ty.IcxActionSubmitDFCHTLC && action.SubmitDFCHTLC != nil:
		return a.submitDFCHTLC(action.SubmitDFCHTLC)
	case action.Ty == ty.IcxActionSubmitExtHTLC && action.SubmitExtHTLC != nil:
		return a.submitExtHTLC(action.SubmitExtHTLC)
	case action.Ty == ty.IcxActionClaimDFCHTLC && action.ClaimDFCHTLC != nil:
		return a.claimDFCHTLC(action.ClaimDFCHTLC)
	case action.Ty == ty.IcxActionCloseOrder && action.CloseOrder != nil:
		return a.closeOrder(action.CloseOrder)
	case action.Ty == ty.IcxActionCloseOffer && action.CloseOffer != nil:
		return a.closeOffer(action.CloseOffer)
	}
	return nil, types.ErrActionNotSupport
}

// BeginBlock expiry sweep of the current height
func (icx *ICX) BeginBlock() (*types.Receipt, error) {
	return newIcxDB(icx, nil).sweep()
}
