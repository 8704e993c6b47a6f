// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// orderType which pair is set, exactly one must be
func orderType(p *ty.IcxCreateOrder) (ty.OrderType, error) {
	internal := p.TokenFrom != "" || p.ChainTo != ""
	external := p.ChainFrom != "" || p.TokenTo != ""
	switch {
	case internal && !external && p.TokenFrom != "" && p.ChainTo != "":
		return ty.OrderInternal, nil
	case external && !internal && p.ChainFrom != "" && p.TokenTo != "":
		return ty.OrderExternal, nil
	}
	return 0, ty.ErrInvalidSpec
}

func (a *icxDB) createOrder(p *ty.IcxCreateOrder) (*types.Receipt, error) {
	otype, err := orderType(p)
	if err != nil {
		xlog.Error("createOrder", "txid", a.txid, "err", err)
		return nil, err
	}
	if err = address.CheckAddress(p.OwnerAddress); err != nil {
		xlog.Error("createOrder", "owner", p.OwnerAddress, "err", err)
		return nil, ty.ErrInvalidAddress
	}
	if p.OwnerAddress != a.fromaddr {
		xlog.Error("createOrder", "owner", p.OwnerAddress, "from", a.fromaddr)
		return nil, ty.ErrForbidden
	}
	if !types.CheckAmount(p.AmountFrom) || !types.CheckAmount(p.OrderPrice) || p.Expiry < 0 {
		return nil, ty.ErrInvalidAmount
	}
	order := &ty.Order{
		ID:           a.txid,
		Type:         otype,
		OwnerAddress: p.OwnerAddress,
		AmountFrom:   p.AmountFrom,
		AmountToFill: p.AmountFrom,
		OrderPrice:   p.OrderPrice,
		Height:       a.height,
		Status:       ty.StatusOpen,
	}
	expiry := p.Expiry
	if expiry == 0 {
		expiry = a.cfg.DefaultOrderExpiry
	}
	order.ExpiryHeight = a.height + expiry

	switch otype {
	case ty.OrderInternal:
		if p.ChainTo != ty.ChainBTC {
			return nil, ty.ErrInvalidSpec
		}
		if p.ReceivePubkey == "" || address.CheckPubkey(p.ReceivePubkey) != nil {
			xlog.Error("createOrder", "receivePubkey", p.ReceivePubkey)
			return nil, ty.ErrInvalidPubkey
		}
		acc, err := a.assetDB(p.TokenFrom)
		if err != nil {
			return nil, err
		}
		// escrow of the asset being sold
		if err = a.freeze(acc, p.OwnerAddress, p.AmountFrom); err != nil {
			xlog.Error("createOrder", "owner", p.OwnerAddress, "amount", p.AmountFrom, "err", err)
			return nil, err
		}
		order.TokenFrom, order.ChainTo, order.ReceivePubkey = p.TokenFrom, p.ChainTo, p.ReceivePubkey
	case ty.OrderExternal:
		if p.ChainFrom != ty.ChainBTC {
			return nil, ty.ErrInvalidSpec
		}
		if p.ReceivePubkey != "" {
			return nil, ty.ErrInvalidSpec
		}
		if !assetExists(a, p.TokenTo) {
			return nil, ty.ErrAssetNotFound
		}
		order.ChainFrom, order.TokenTo = p.ChainFrom, p.TokenTo
	}

	a.saveOrder(order, 0)
	a.addExpiry(order.ExpiryHeight, ty.ExpireOrder, order.ID)
	ordersCreated.Inc(1)
	xlog.Debug("createOrder", "id", order.ID, "type", order.Type, "amount", order.AmountFrom, "price", order.OrderPrice)
	return a.receipt, nil
}

func assetExists(a *icxDB, symbol string) bool {
	_, err := a.assetDB(symbol)
	return err == nil
}

func (a *icxDB) closeOrder(p *ty.IcxCloseOrder) (*types.Receipt, error) {
	order, err := a.getOrder(p.OrderTx)
	if err != nil {
		return nil, err
	}
	if order.OwnerAddress != a.fromaddr {
		xlog.Error("closeOrder", "id", order.ID, "owner", order.OwnerAddress, "from", a.fromaddr)
		return nil, ty.ErrForbidden
	}
	if order.Status != ty.StatusOpen {
		return nil, ty.ErrOrderNotOpen
	}
	// an offer whose DFC HTLC is still open blocks the close
	for _, offerTx := range a.getOrderOffers(order.ID).IDs {
		offer, err := a.getOffer(offerTx)
		if err != nil {
			return nil, err
		}
		if offer.Status != ty.StatusOpen {
			continue
		}
		if htlcs := a.getOfferHTLCs(offerTx); htlcs.DFC != "" {
			xlog.Error("closeOrder", "id", order.ID, "offer", offerTx, "err", ty.ErrOrderHasOpenHTLC)
			return nil, ty.ErrOrderHasOpenHTLC
		}
	}
	if err = a.finishOrder(order, ty.StatusClosed); err != nil {
		return nil, err
	}
	return a.receipt, nil
}

// finishOrder move an open order to a terminal status. Offers without a DFC
// HTLC end with it, and the unfilled escrow goes back to the owner.
func (a *icxDB) finishOrder(order *ty.Order, status ty.Status) error {
	offerStatus := ty.StatusClosed
	if status == ty.StatusExpired {
		offerStatus = ty.StatusExpired
	}
	for _, offerTx := range a.getOrderOffers(order.ID).IDs {
		offer, err := a.getOffer(offerTx)
		if err != nil {
			return err
		}
		if offer.Status != ty.StatusOpen || a.getOfferHTLCs(offerTx).DFC != "" {
			continue
		}
		if err = a.finishOffer(order, offer, offerStatus); err != nil {
			return err
		}
	}
	if order.Type == ty.OrderInternal {
		acc, err := a.assetDB(order.TokenFrom)
		if err != nil {
			return err
		}
		if err = a.unfreeze(acc, order.OwnerAddress, order.AmountToFill); err != nil {
			return err
		}
	}
	prev := order.Status
	order.Status = status
	order.CloseHeight = a.height
	order.CloseTx = a.txid
	a.saveOrder(order, prev)
	xlog.Debug("finishOrder", "id", order.ID, "status", status, "unfilled", order.AmountToFill)
	return nil
}

// releaseReserve give back capacity held by an offer that will not fill.
// Capacity returned to a terminal INTERNAL order is unfrozen to its owner.
func (a *icxDB) releaseReserve(order *ty.Order, reserved int64) error {
	order.Reserved -= reserved
	order.AmountToFill += reserved
	if order.Status == ty.StatusOpen || order.Type != ty.OrderInternal {
		return nil
	}
	acc, err := a.assetDB(order.TokenFrom)
	if err != nil {
		return err
	}
	return a.unfreeze(acc, order.OwnerAddress, reserved)
}

// consumeReserve capacity filled by a claim
func (a *icxDB) consumeReserve(order *ty.Order, reserved int64) {
	order.Reserved -= reserved
	order.Consumed += reserved
	if order.Status == ty.StatusOpen && order.AmountToFill == 0 && order.Reserved == 0 {
		order.Status = ty.StatusFilled
		order.CloseHeight = a.height
		order.CloseTx = a.txid
	}
}
