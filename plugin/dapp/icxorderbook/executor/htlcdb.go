// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/common"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// amountTolerance external amounts may differ from the converted DFC amount
// by one satoshi of truncation
const amountTolerance = 1

// nativeHolder address that escrows the native side
func nativeHolder(order *ty.Order, offer *ty.Offer) string {
	if order.Type == ty.OrderInternal {
		return order.OwnerAddress
	}
	return offer.OwnerAddress
}

// foreignHolder address that escrows BTC
func foreignHolder(order *ty.Order, offer *ty.Offer) string {
	if order.Type == ty.OrderInternal {
		return offer.OwnerAddress
	}
	return order.OwnerAddress
}

func (a *icxDB) openOffer(offerTx string) (*ty.Offer, *ty.Order, error) {
	offer, err := a.getOffer(offerTx)
	if err != nil {
		return nil, nil, err
	}
	if offer.Status != ty.StatusOpen {
		return nil, nil, ty.ErrOfferNotOpen
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return nil, nil, err
	}
	return offer, order, nil
}

func (a *icxDB) submitDFCHTLC(p *ty.IcxSubmitDFCHTLC) (*types.Receipt, error) {
	offer, order, err := a.openOffer(p.OfferTx)
	if err != nil {
		return nil, err
	}
	if order.Status != ty.StatusOpen {
		return nil, ty.ErrOrderNotOpen
	}
	htlcs := a.getOfferHTLCs(offer.ID)
	if htlcs.DFC != "" {
		return nil, ty.ErrDFCHTLCExists
	}
	submitter := nativeHolder(order, offer)
	if a.fromaddr != submitter {
		xlog.Error("submitDFCHTLC", "offer", offer.ID, "from", a.fromaddr, "want", submitter)
		return nil, ty.ErrForbidden
	}
	if !types.CheckAmount(p.Amount) {
		return nil, ty.ErrInvalidAmount
	}
	native := nativeAmount(order, offer)
	if p.Amount > native {
		xlog.Error("submitDFCHTLC", "offer", offer.ID, "amount", p.Amount, "offered", native)
		return nil, ty.ErrAmountExceedsOffer
	}
	if !common.IsHash32(p.Hash) {
		return nil, ty.ErrInvalidHash
	}
	minTimeout := a.cfg.MinDFCHTLCTimeout
	if order.Type == ty.OrderExternal {
		minTimeout = a.cfg.MinDFCHTLCTimeoutExt
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = minTimeout
	}
	if timeout < minTimeout {
		xlog.Error("submitDFCHTLC", "offer", offer.ID, "timeout", timeout, "min", minTimeout)
		return nil, ty.ErrTimeoutTooShort
	}

	// overpay refund: fee and capacity shrink to the escrowed amount
	if p.Amount < native {
		fee := ProportionalFee(offer.TakerFee, p.Amount, native)
		if err = a.unfreeze(a.coins(), offer.OwnerAddress, offer.TakerFee-fee); err != nil {
			return nil, err
		}
		offer.TakerFee = fee
		reserve, err := nativeToOrderUnits(order, p.Amount)
		if err != nil {
			return nil, ty.ErrInvalidAmount
		}
		if err = a.releaseReserve(order, offer.Reserved-reserve); err != nil {
			return nil, err
		}
		offer.Reserved = reserve
		if offer.Amount, err = nativeToOfferUnits(order, p.Amount); err != nil {
			return nil, ty.ErrInvalidAmount
		}
	}

	deposit := MakerDeposit(offer.TakerFee)
	if err = a.freeze(a.coins(), submitter, deposit); err != nil {
		xlog.Error("submitDFCHTLC", "submitter", submitter, "deposit", deposit, "err", err)
		return nil, err
	}
	// INTERNAL amounts are already held by the order escrow
	if order.Type == ty.OrderExternal {
		acc, err := a.assetDB(order.TokenTo)
		if err != nil {
			return nil, err
		}
		if err = a.freeze(acc, submitter, p.Amount); err != nil {
			xlog.Error("submitDFCHTLC", "submitter", submitter, "amount", p.Amount, "err", err)
			return nil, err
		}
	}

	htlc := &ty.DFCHTLC{
		ID:           a.txid,
		OfferTx:      offer.ID,
		Asset:        order.NativeAsset(),
		Amount:       p.Amount,
		Hash:         common.NormalizeHex(p.Hash),
		Timeout:      timeout,
		OwnerAddress: submitter,
		MakerDeposit: deposit,
		Height:       a.height,
		RefundHeight: a.height + timeout,
		Status:       ty.HTLCOpen,
	}
	htlcs.DFC = htlc.ID
	a.saveDFCHTLC(htlc, 0)
	a.saveOffer(offer, offer.Status)
	a.saveOrder(order, order.Status)
	a.saveOfferHTLCs(offer.ID, htlcs)
	a.addExpiry(htlc.RefundHeight, ty.ExpireDFCHTLC, htlc.ID)
	xlog.Debug("submitDFCHTLC", "id", htlc.ID, "offer", offer.ID, "amount", htlc.Amount, "refundHeight", htlc.RefundHeight)
	return a.receipt, nil
}

func (a *icxDB) submitExtHTLC(p *ty.IcxSubmitExtHTLC) (*types.Receipt, error) {
	offer, order, err := a.openOffer(p.OfferTx)
	if err != nil {
		return nil, err
	}
	htlcs := a.getOfferHTLCs(offer.ID)
	if htlcs.DFC == "" {
		xlog.Error("submitExtHTLC", "offer", offer.ID, "err", ty.ErrNoDFCHTLC)
		return nil, ty.ErrNoDFCHTLC
	}
	dfc, err := a.getDFCHTLC(htlcs.DFC)
	if err != nil {
		return nil, err
	}
	if dfc.Status != ty.HTLCOpen {
		return nil, ty.ErrNoDFCHTLC
	}
	if htlcs.Ext != "" {
		return nil, ty.ErrExtHTLCExists
	}
	if a.fromaddr != foreignHolder(order, offer) {
		return nil, ty.ErrForbidden
	}
	if !common.IsHash32(p.Hash) {
		return nil, ty.ErrInvalidHash
	}
	if common.NormalizeHex(p.Hash) != dfc.Hash {
		xlog.Error("submitExtHTLC", "offer", offer.ID, "hash", p.Hash, "dfchash", dfc.Hash)
		return nil, ty.ErrHashMismatch
	}
	if !types.CheckAmount(p.Amount) {
		return nil, ty.ErrInvalidAmount
	}
	expected, err := foreignAmount(order, dfc.Amount)
	if err != nil {
		return nil, ty.ErrInvalidAmount
	}
	if diff := p.Amount - expected; diff > amountTolerance || diff < -amountTolerance {
		xlog.Error("submitExtHTLC", "offer", offer.ID, "amount", p.Amount, "expected", expected)
		return nil, ty.ErrAmountMismatch
	}
	if p.Timeout < a.cfg.MinExtHTLCTimeout {
		return nil, ty.ErrTimeoutTooShort
	}
	if order.ExpiryHeight < a.height+p.Timeout*a.cfg.ExtBlockRatio {
		xlog.Error("submitExtHTLC", "order", order.ID, "expiryHeight", order.ExpiryHeight, "timeout", p.Timeout)
		return nil, ty.ErrOrderExpiresBeforeHTLC
	}
	if err = address.CheckBTCAddress(p.HTLCScriptAddress, a.cfg.BTCNetwork); err != nil {
		xlog.Error("submitExtHTLC", "htlcScriptAddress", p.HTLCScriptAddress, "err", err)
		return nil, ty.ErrInvalidAddress
	}
	if err = address.CheckPubkey(p.OwnerPubkey); err != nil {
		return nil, ty.ErrInvalidPubkey
	}

	htlc := &ty.ExtHTLC{
		ID:                a.txid,
		OfferTx:           offer.ID,
		Amount:            p.Amount,
		Hash:              dfc.Hash,
		HTLCScriptAddress: p.HTLCScriptAddress,
		OwnerPubkey:       p.OwnerPubkey,
		Timeout:           p.Timeout,
		Height:            a.height,
		Status:            ty.HTLCOpen,
	}
	htlcs.Ext = htlc.ID
	a.saveExtHTLC(htlc, 0)
	a.saveOfferHTLCs(offer.ID, htlcs)
	xlog.Debug("submitExtHTLC", "id", htlc.ID, "offer", offer.ID, "amount", htlc.Amount)
	return a.receipt, nil
}

// checkSeed sha256(seed) must equal the htlc hash
func checkSeed(seed, hash string) error {
	raw, err := hex.DecodeString(common.NormalizeHex(seed))
	if err != nil || len(raw) == 0 {
		return ty.ErrInvalidSeed
	}
	if hex.EncodeToString(common.Sha256(raw)) != hash {
		return ty.ErrSeedMismatch
	}
	return nil
}

func (a *icxDB) claimDFCHTLC(p *ty.IcxClaimDFCHTLC) (*types.Receipt, error) {
	dfc, err := a.getDFCHTLC(p.DfchtlcTx)
	if err != nil {
		return nil, err
	}
	if dfc.Status != ty.HTLCOpen {
		return nil, ty.ErrHTLCNotOpen
	}
	if err = checkSeed(p.Seed, dfc.Hash); err != nil {
		xlog.Error("claimDFCHTLC", "htlc", dfc.ID, "err", err)
		return nil, err
	}
	offer, err := a.getOffer(dfc.OfferTx)
	if err != nil {
		return nil, err
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return nil, err
	}
	acc, err := a.assetDB(dfc.Asset)
	if err != nil {
		return nil, err
	}
	// the party revealing the seed holds BTC and receives the native amount
	if err = a.payFrozen(acc, dfc.OwnerAddress, foreignHolder(order, offer), dfc.Amount); err != nil {
		return nil, err
	}
	// the order owner earns the taker fee for both order types: the DFC
	// HTLC submitter for INTERNAL orders, the BTC seller for EXTERNAL ones
	coins := a.coins()
	if err = a.payFrozen(coins, offer.OwnerAddress, order.OwnerAddress, offer.TakerFee); err != nil {
		return nil, err
	}
	if err = a.unfreeze(coins, dfc.OwnerAddress, dfc.MakerDeposit); err != nil {
		return nil, err
	}

	dfc.Status = ty.HTLCClaimed
	a.saveDFCHTLC(dfc, ty.HTLCOpen)
	htlcs := a.getOfferHTLCs(offer.ID)
	if htlcs.Ext != "" {
		ext, err := a.getExtHTLC(htlcs.Ext)
		if err != nil {
			return nil, err
		}
		if ext.Status == ty.HTLCOpen {
			ext.Status = ty.HTLCClaimed
			a.saveExtHTLC(ext, ty.HTLCOpen)
		}
	}
	claim := &ty.ClaimDFCHTLC{
		ID:        a.txid,
		OfferTx:   offer.ID,
		DfchtlcTx: dfc.ID,
		Seed:      common.NormalizeHex(p.Seed),
		Claimer:   a.fromaddr,
		Height:    a.height,
	}
	htlcs.Claim = claim.ID
	a.saveClaim(claim)
	a.saveOfferHTLCs(offer.ID, htlcs)

	prev := offer.Status
	offer.Status = ty.StatusFilled
	offer.CloseHeight = a.height
	offer.CloseTx = a.txid
	a.saveOffer(offer, prev)

	prevOrder := order.Status
	a.consumeReserve(order, offer.Reserved)
	a.saveOrder(order, prevOrder)
	htlcsClaimed.Inc(1)
	xlog.Info("claimDFCHTLC", "htlc", dfc.ID, "offer", offer.ID, "order", order.ID, "orderStatus", order.Status)
	return a.receipt, nil
}

// refundDFCHTLC timeout of an unclaimed DFC HTLC. The submitter gets the
// deposit back; EXTERNAL amounts are unfrozen, INTERNAL ones return to the
// order escrow while the order is open.
func (a *icxDB) refundDFCHTLC(dfc *ty.DFCHTLC) error {
	offer, err := a.getOffer(dfc.OfferTx)
	if err != nil {
		return err
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return err
	}
	coins := a.coins()
	if order.Type == ty.OrderExternal {
		acc, err := a.assetDB(dfc.Asset)
		if err != nil {
			return err
		}
		if err = a.unfreeze(acc, dfc.OwnerAddress, dfc.Amount); err != nil {
			return err
		}
	}
	if err = a.unfreeze(coins, dfc.OwnerAddress, dfc.MakerDeposit); err != nil {
		return err
	}
	dfc.Status = ty.HTLCRefunded
	a.saveDFCHTLC(dfc, ty.HTLCOpen)

	if id := a.getOfferHTLCs(offer.ID).Ext; id != "" {
		ext, err := a.getExtHTLC(id)
		if err != nil {
			return err
		}
		if ext.Status == ty.HTLCOpen {
			ext.Status = ty.HTLCExpired
			a.saveExtHTLC(ext, ty.HTLCOpen)
		}
	}
	if offer.Status == ty.StatusOpen {
		if err = a.finishOffer(order, offer, ty.StatusExpired); err != nil {
			return err
		}
		a.saveOrder(order, order.Status)
	}
	htlcsRefunded.Inc(1)
	xlog.Info("refundDFCHTLC", "htlc", dfc.ID, "offer", offer.ID, "submitter", dfc.OwnerAddress)
	return nil
}
