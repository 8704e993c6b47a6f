// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

func (a *icxDB) makeOffer(p *ty.IcxMakeOffer) (*types.Receipt, error) {
	order, err := a.getOrder(p.OrderTx)
	if err != nil {
		return nil, err
	}
	if order.Status != ty.StatusOpen {
		xlog.Error("makeOffer", "order", order.ID, "status", order.Status)
		return nil, ty.ErrOrderNotOpen
	}
	if err = address.CheckAddress(p.OwnerAddress); err != nil {
		return nil, ty.ErrInvalidAddress
	}
	if p.OwnerAddress != a.fromaddr {
		return nil, ty.ErrForbidden
	}
	if !types.CheckAmount(p.Amount) || p.Expiry < 0 {
		return nil, ty.ErrInvalidAmount
	}
	switch order.Type {
	case ty.OrderExternal:
		if p.ReceivePubkey == "" || address.CheckPubkey(p.ReceivePubkey) != nil {
			xlog.Error("makeOffer", "order", order.ID, "receivePubkey", p.ReceivePubkey)
			return nil, ty.ErrInvalidPubkey
		}
	case ty.OrderInternal:
		if p.ReceivePubkey != "" && address.CheckPubkey(p.ReceivePubkey) != nil {
			return nil, ty.ErrInvalidPubkey
		}
	}
	// compared before conversion so huge offers cannot wrap into range
	remaining := types.AmountToDecimal(order.AmountToFill)
	if types.DivAmount(types.AmountToDecimal(p.Amount), types.AmountToDecimal(order.OrderPrice)).GreaterThan(remaining) {
		xlog.Error("makeOffer", "order", order.ID, "amount", p.Amount, "amountToFill", order.AmountToFill)
		return nil, ty.ErrAmountExceedsRemaining
	}
	reserve, err := offerReserve(order, p.Amount)
	if err != nil || reserve <= 0 {
		xlog.Error("makeOffer", "order", order.ID, "reserve", reserve, "err", err)
		return nil, ty.ErrAmountExceedsRemaining
	}
	fee, err := a.takerFee(order.Type, p.Amount)
	if err != nil {
		return nil, err
	}
	if err = a.freeze(a.coins(), p.OwnerAddress, fee); err != nil {
		xlog.Error("makeOffer", "owner", p.OwnerAddress, "fee", fee, "err", err)
		return nil, err
	}

	expiry := p.Expiry
	if expiry == 0 {
		expiry = a.cfg.DefaultOfferExpiry
	}
	offer := &ty.Offer{
		ID:            a.txid,
		OrderTx:       order.ID,
		Amount:        p.Amount,
		OwnerAddress:  p.OwnerAddress,
		ReceivePubkey: p.ReceivePubkey,
		TakerFee:      fee,
		Reserved:      reserve,
		Height:        a.height,
		ExpiryHeight:  a.height + expiry,
		Status:        ty.StatusOpen,
	}
	order.AmountToFill -= reserve
	order.Reserved += reserve

	a.saveOffer(offer, 0)
	a.saveOrder(order, order.Status)
	a.addOrderOffer(order.ID, offer.ID)
	a.addExpiry(offer.ExpiryHeight, ty.ExpireOffer, offer.ID)
	offersCreated.Inc(1)
	xlog.Debug("makeOffer", "id", offer.ID, "order", order.ID, "amount", offer.Amount, "fee", fee)
	return a.receipt, nil
}

func (a *icxDB) closeOffer(p *ty.IcxCloseOffer) (*types.Receipt, error) {
	offer, err := a.getOffer(p.OfferTx)
	if err != nil {
		return nil, err
	}
	if offer.OwnerAddress != a.fromaddr {
		xlog.Error("closeOffer", "id", offer.ID, "owner", offer.OwnerAddress, "from", a.fromaddr)
		return nil, ty.ErrForbidden
	}
	if offer.Status != ty.StatusOpen {
		return nil, ty.ErrOfferNotOpen
	}
	if a.getOfferHTLCs(offer.ID).DFC != "" {
		return nil, ty.ErrOfferHasHTLC
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return nil, err
	}
	if err = a.finishOffer(order, offer, ty.StatusClosed); err != nil {
		return nil, err
	}
	a.saveOrder(order, order.Status)
	return a.receipt, nil
}

// finishOffer end an open offer that did not fill: the fee still frozen goes
// back to the taker and the reservation to the order. The caller saves order.
func (a *icxDB) finishOffer(order *ty.Order, offer *ty.Offer, status ty.Status) error {
	if err := a.unfreeze(a.coins(), offer.OwnerAddress, offer.TakerFee); err != nil {
		return err
	}
	if err := a.releaseReserve(order, offer.Reserved); err != nil {
		return err
	}
	prev := offer.Status
	offer.Status = status
	offer.CloseHeight = a.height
	offer.CloseTx = a.txid
	a.saveOffer(offer, prev)
	return nil
}
