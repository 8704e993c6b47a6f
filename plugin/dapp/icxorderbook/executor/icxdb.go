// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/account"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	mexec "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/executor"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// icxDB one operation or one sweep over the block state. Every write is
// recorded in receipt so a failed operation can be rolled back as a whole.
type icxDB struct {
	db       dbm.KV
	cfg      *types.ICX
	txid     string
	fromaddr string
	height   int64
	receipt  *types.Receipt
}

func newIcxDB(icx *ICX, tx *types.Transaction) *icxDB {
	a := &icxDB{
		db:      icx.GetStateDB(),
		cfg:     icxConfig(icx.GetConfig()),
		height:  icx.GetHeight(),
		receipt: &types.Receipt{Ty: types.ExecOk},
	}
	if tx != nil {
		a.txid = tx.TxID()
		a.fromaddr = tx.From()
	}
	return a
}

// icxConfig defaults for every unset field
func icxConfig(cfg *types.Config) *types.ICX {
	def := types.DefaultICX()
	if cfg == nil || cfg.ICX == nil {
		return def
	}
	c := *cfg.ICX
	if c.DefaultOrderExpiry <= 0 {
		c.DefaultOrderExpiry = def.DefaultOrderExpiry
	}
	if c.DefaultOfferExpiry <= 0 {
		c.DefaultOfferExpiry = def.DefaultOfferExpiry
	}
	if c.MinDFCHTLCTimeout <= 0 {
		c.MinDFCHTLCTimeout = def.MinDFCHTLCTimeout
	}
	if c.MinDFCHTLCTimeoutExt <= 0 {
		c.MinDFCHTLCTimeoutExt = def.MinDFCHTLCTimeoutExt
	}
	if c.MinExtHTLCTimeout <= 0 {
		c.MinExtHTLCTimeout = def.MinExtHTLCTimeout
	}
	if c.ExtBlockRatio <= 0 {
		c.ExtBlockRatio = def.ExtBlockRatio
	}
	if c.BTCNetwork == "" {
		c.BTCNetwork = def.BTCNetwork
	}
	return &c
}

func (a *icxDB) merge(r *types.Receipt) {
	if r == nil {
		return
	}
	a.receipt.KV = append(a.receipt.KV, r.KV...)
	a.receipt.Logs = append(a.receipt.Logs, r.Logs...)
}

func (a *icxDB) set(key []byte, value []byte) {
	a.db.Set(key, value)
	a.receipt.KV = append(a.receipt.KV, &types.KeyValue{Key: key, Value: value})
}

func (a *icxDB) log(logTy int32, v types.Message) {
	a.receipt.Logs = append(a.receipt.Logs, &types.ReceiptLog{Ty: logTy, Log: types.Encode(v)})
}

func (a *icxDB) get(key []byte, v types.Message, notFound error) error {
	value, err := a.db.Get(key)
	if err != nil {
		return notFound
	}
	return types.Decode(value, v)
}

func (a *icxDB) getOrder(id string) (*ty.Order, error) {
	var order ty.Order
	if err := a.get(calcOrderKey(id), &order, ty.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *icxDB) getOffer(id string) (*ty.Offer, error) {
	var offer ty.Offer
	if err := a.get(calcOfferKey(id), &offer, ty.ErrOfferNotFound); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (a *icxDB) getDFCHTLC(id string) (*ty.DFCHTLC, error) {
	var htlc ty.DFCHTLC
	if err := a.get(calcDFCHTLCKey(id), &htlc, ty.ErrHTLCNotFound); err != nil {
		return nil, err
	}
	return &htlc, nil
}

func (a *icxDB) getExtHTLC(id string) (*ty.ExtHTLC, error) {
	var htlc ty.ExtHTLC
	if err := a.get(calcExtHTLCKey(id), &htlc, ty.ErrHTLCNotFound); err != nil {
		return nil, err
	}
	return &htlc, nil
}

func (a *icxDB) getClaim(id string) (*ty.ClaimDFCHTLC, error) {
	var claim ty.ClaimDFCHTLC
	if err := a.get(calcClaimKey(id), &claim, ty.ErrHTLCNotFound); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (a *icxDB) getOrderOffers(orderTx string) *ty.IDList {
	var list ty.IDList
	if err := a.get(calcOrderOffersKey(orderTx), &list, types.ErrNotFound); err != nil {
		return &ty.IDList{}
	}
	return &list
}

func (a *icxDB) getOfferHTLCs(offerTx string) *ty.OfferHTLCs {
	var htlcs ty.OfferHTLCs
	if err := a.get(calcOfferHTLCsKey(offerTx), &htlcs, types.ErrNotFound); err != nil {
		return &ty.OfferHTLCs{}
	}
	return &htlcs
}

func (a *icxDB) saveOrder(order *ty.Order, prev ty.Status) {
	a.set(calcOrderKey(order.ID), types.Encode(order))
	cp := *order
	a.log(ty.TyLogICXOrder, &ty.ReceiptICXOrder{Order: &cp, PrevStatus: prev})
}

func (a *icxDB) saveOffer(offer *ty.Offer, prev ty.Status) {
	a.set(calcOfferKey(offer.ID), types.Encode(offer))
	cp := *offer
	a.log(ty.TyLogICXOffer, &ty.ReceiptICXOffer{Offer: &cp, PrevStatus: prev})
}

func (a *icxDB) saveDFCHTLC(htlc *ty.DFCHTLC, prev ty.HTLCStatus) {
	a.set(calcDFCHTLCKey(htlc.ID), types.Encode(htlc))
	cp := *htlc
	a.log(ty.TyLogICXDFCHTLC, &ty.ReceiptICXDFCHTLC{HTLC: &cp, PrevStatus: prev})
}

func (a *icxDB) saveExtHTLC(htlc *ty.ExtHTLC, prev ty.HTLCStatus) {
	a.set(calcExtHTLCKey(htlc.ID), types.Encode(htlc))
	cp := *htlc
	a.log(ty.TyLogICXExtHTLC, &ty.ReceiptICXExtHTLC{HTLC: &cp, PrevStatus: prev})
}

func (a *icxDB) saveClaim(claim *ty.ClaimDFCHTLC) {
	a.set(calcClaimKey(claim.ID), types.Encode(claim))
	a.log(ty.TyLogICXClaimDFCHTLC, &ty.ReceiptICXClaim{Claim: claim})
}

func (a *icxDB) addOrderOffer(orderTx, offerTx string) {
	list := a.getOrderOffers(orderTx)
	list.IDs = append(list.IDs, offerTx)
	a.set(calcOrderOffersKey(orderTx), types.Encode(list))
}

func (a *icxDB) saveOfferHTLCs(offerTx string, htlcs *ty.OfferHTLCs) {
	a.set(calcOfferHTLCsKey(offerTx), types.Encode(htlcs))
}

// addExpiry schedule id for the sweep of the first block past height
func (a *icxDB) addExpiry(height int64, kind ty.ExpiryKind, id string) {
	key := calcExpireKey(height + 1)
	var bucket ty.ExpiryBucket
	if err := a.get(key, &bucket, types.ErrNotFound); err != nil {
		bucket = ty.ExpiryBucket{}
	}
	bucket.Entries = append(bucket.Entries, &ty.ExpiryEntry{Kind: kind, ID: id})
	a.set(key, types.Encode(&bucket))
}

func (a *icxDB) assetDB(symbol string) (*account.DB, error) {
	if !account.AssetExists(a.db, symbol) {
		return nil, ty.ErrAssetNotFound
	}
	return account.NewAccountDB(symbol, a.db)
}

func (a *icxDB) coins() *account.DB {
	return account.NewCoinsAccount(a.db)
}

// fundsErr balance shortfalls surface as ErrInsufficientFunds
func fundsErr(err error) error {
	if err == types.ErrNoBalance {
		return ty.ErrInsufficientFunds
	}
	return err
}

// freeze, unfreeze and payFrozen skip zero amounts

func (a *icxDB) freeze(acc *account.DB, addr string, amount int64) error {
	if amount == 0 {
		return nil
	}
	r, err := acc.Frozen(addr, amount)
	if err != nil {
		return fundsErr(err)
	}
	a.merge(r)
	return nil
}

func (a *icxDB) unfreeze(acc *account.DB, addr string, amount int64) error {
	if amount == 0 {
		return nil
	}
	r, err := acc.Active(addr, amount)
	if err != nil {
		return fundsErr(err)
	}
	a.merge(r)
	return nil
}

func (a *icxDB) payFrozen(acc *account.DB, from, to string, amount int64) error {
	if amount == 0 {
		return nil
	}
	r, err := acc.TransferFrozen(from, to, amount)
	if err != nil {
		return fundsErr(err)
	}
	a.merge(r)
	return nil
}

// govAmount governance parameter as a fixed point amount, 0 if unset
func (a *icxDB) govAmount(key string) (int64, error) {
	value, err := mexec.GetGovParam(a.db, key)
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return types.ParseAmount(value)
}

func (a *icxDB) takerFee(orderType ty.OrderType, amount int64) (int64, error) {
	feePerBTC, err := a.govAmount(ty.GovTakerFeePerBTC)
	if err != nil {
		return 0, err
	}
	dfiPerBTC, err := a.govAmount(ty.GovDFIPerBTC)
	if err != nil {
		return 0, err
	}
	fee, err := TakerFee(orderType, amount, feePerBTC, dfiPerBTC)
	if err != nil {
		xlog.Error("takerFee", "amount", amount, "feePerBTC", feePerBTC, "dfiPerBTC", dfiPerBTC)
		return 0, ty.ErrInvalidAmount
	}
	return fee, nil
}
