// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
)

// sellBTC EXTERNAL order of amount BTC at price DFI per BTC
func (s *icxSuite) sellBTC(amount, price string) (string, error) {
	tx := ty.CreateOrderTx(s.ctx.Maker, &ty.IcxCreateOrder{
		ChainFrom:    s.ctx.Chain,
		TokenTo:      s.ctx.Symbol,
		OwnerAddress: s.ctx.Maker,
		AmountFrom:   amt(amount),
		OrderPrice:   amt(price),
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) offerDFI(orderTx, amount string) (string, error) {
	tx := ty.MakeOfferTx(s.ctx.Taker, &ty.IcxMakeOffer{
		OrderTx:       orderTx,
		Amount:        amt(amount),
		OwnerAddress:  s.ctx.Taker,
		ReceivePubkey: s.ctx.TakerPubkey,
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

// externalOffer 2 BTC at 100 DFI per BTC, offer of 100 DFI
func (s *icxSuite) externalOffer() (string, string) {
	orderTx, err := s.sellBTC("2", "100")
	s.Require().NoError(err)
	offerTx, err := s.offerDFI(orderTx, "100")
	s.Require().NoError(err)
	return orderTx, offerTx
}

func (s *icxSuite) TestCreateExternalOrder() {
	orderTx, err := s.sellBTC("2", "100")
	s.Require().NoError(err)
	order := s.chain.order(orderTx)
	s.Equal(ty.OrderExternal, order.Type)
	s.Equal(s.ctx.Symbol, order.NativeAsset())
	// nothing native is escrowed by the maker
	s.Equal(int64(0), s.chain.coins(s.ctx.Maker).Frozen)

	err = s.chain.exec(ty.CreateOrderTx(s.ctx.Maker, &ty.IcxCreateOrder{
		ChainFrom: s.ctx.Chain, TokenTo: s.ctx.Symbol, OwnerAddress: s.ctx.Maker,
		ReceivePubkey: s.ctx.MakerPubkey, AmountFrom: amt("1"), OrderPrice: amt("100"),
	}, s.nonce()))
	s.Equal(ty.ErrInvalidSpec, err)
	err = s.chain.exec(ty.CreateOrderTx(s.ctx.Maker, &ty.IcxCreateOrder{
		ChainFrom: s.ctx.Chain, TokenTo: "XYZ", OwnerAddress: s.ctx.Maker,
		AmountFrom: amt("1"), OrderPrice: amt("100"),
	}, s.nonce()))
	s.Equal(ty.ErrAssetNotFound, err)
}

func (s *icxSuite) TestExternalOffer() {
	orderTx, err := s.sellBTC("2", "100")
	s.Require().NoError(err)

	err = s.chain.exec(ty.MakeOfferTx(s.ctx.Taker, &ty.IcxMakeOffer{
		OrderTx: orderTx, Amount: amt("100"), OwnerAddress: s.ctx.Taker,
	}, s.nonce()))
	s.Equal(ty.ErrInvalidPubkey, err)
	_, err = s.offerDFI(orderTx, "201")
	s.Equal(ty.ErrAmountExceedsRemaining, err)

	offerTx, err := s.offerDFI(orderTx, "100")
	s.Require().NoError(err)
	offer := s.chain.offer(offerTx)
	// 100 DFI * 0.001 fee per BTC, no dex conversion
	s.Equal(amt("0.1"), offer.TakerFee)
	s.Equal(amt("1"), offer.Reserved)
	order := s.chain.order(orderTx)
	s.Equal(amt("1"), order.AmountToFill)
	s.chain.checkOrderBooks(orderTx)
}

func (s *icxSuite) TestExternalSwap() {
	total := s.totalCoins()
	orderTx, offerTx := s.externalOffer()

	// the taker holds the native side here
	_, err := s.dfcHTLC(s.ctx.Maker, offerTx, "100", 0)
	s.Equal(ty.ErrForbidden, err)
	_, err = s.dfcHTLC(s.ctx.Taker, offerTx, "100", 29)
	s.Equal(ty.ErrTimeoutTooShort, err)
	dfcTx, err := s.dfcHTLC(s.ctx.Taker, offerTx, "100", 0)
	s.Require().NoError(err)
	dfc := s.chain.dfcHTLC(dfcTx)
	s.Equal(int64(30), dfc.Timeout)
	s.Equal(s.ctx.Taker, dfc.OwnerAddress)
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt("899.8"), taker.Balance)
	s.Equal(amt("100.2"), taker.Frozen)

	_, err = s.extHTLC(s.ctx.Taker, offerTx, "1", s.ctx.Hash, s.ctx.MakerPubkey, 24)
	s.Equal(ty.ErrForbidden, err)
	extTx, err := s.extHTLC(s.ctx.Maker, offerTx, "1", s.ctx.Hash, s.ctx.MakerPubkey, 24)
	s.Require().NoError(err)

	// the maker reveals the seed on the foreign chain and claims here
	_, err = s.claim(s.ctx.Maker, dfcTx, s.ctx.Seed)
	s.Require().NoError(err)
	s.Equal(ty.HTLCClaimed, s.chain.extHTLC(extTx).Status)
	s.Equal(ty.StatusFilled, s.chain.offer(offerTx).Status)
	order := s.chain.order(orderTx)
	s.Equal(ty.StatusOpen, order.Status)
	s.Equal(amt("1"), order.Consumed)

	taker = s.chain.coins(s.ctx.Taker)
	s.Equal(amt("899.9"), taker.Balance)
	s.Equal(int64(0), taker.Frozen)
	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt("1100.1"), maker.Balance)
	s.Equal(total, s.totalCoins())
}

func (s *icxSuite) TestExternalRefund() {
	orderTx, offerTx := s.externalOffer()
	dfcTx, err := s.dfcHTLC(s.ctx.Taker, offerTx, "100", 0)
	s.Require().NoError(err)

	s.chain.advanceTo(s.chain.dfcHTLC(dfcTx).RefundHeight + 1)
	s.Equal(ty.HTLCRefunded, s.chain.dfcHTLC(dfcTx).Status)
	s.Equal(ty.StatusExpired, s.chain.offer(offerTx).Status)
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt(takerFunds), taker.Balance)
	s.Equal(int64(0), taker.Frozen)
	s.Equal(amt("2"), s.chain.order(orderTx).AmountToFill)
}

func (s *icxSuite) TestExternalOverpayRefund() {
	orderTx, offerTx := s.externalOffer()
	_, err := s.dfcHTLC(s.ctx.Taker, offerTx, "50", 0)
	s.Require().NoError(err)

	offer := s.chain.offer(offerTx)
	s.Equal(amt("50"), offer.Amount)
	s.Equal(amt("0.05"), offer.TakerFee)
	s.Equal(amt("0.5"), offer.Reserved)
	s.Equal(amt("1.5"), s.chain.order(orderTx).AmountToFill)
	s.chain.checkOrderBooks(orderTx)
	// 50 escrowed, 0.05 fee, 0.05 deposit
	s.Equal(amt("50.1"), s.chain.coins(s.ctx.Taker).Frozen)
}
