// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/common"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/util"
	"github.com/stretchr/testify/suite"
)

const (
	makerFunds = "1000"
	takerFunds = "1000"
)

// icxSuite one swap context shared by all tests, a fresh chain per test
type icxSuite struct {
	suite.Suite
	ctx   *util.SwapContext
	chain *testChain
}

func (s *icxSuite) SetupSuite() {
	s.ctx = util.NewSwapContext()
}

func (s *icxSuite) SetupTest() {
	cfg := s.ctx.Config(makerFunds, takerFunds)
	cfg.ICX.MinDFCHTLCTimeout = 20
	cfg.ICX.MinDFCHTLCTimeoutExt = 30
	s.chain = newTestChain(s.T(), cfg)
	s.ctx.NewSecret()
}

func TestICXSuite(t *testing.T) {
	suite.Run(t, new(icxSuite))
}

func (s *icxSuite) nonce() int64 {
	return s.chain.nextNonce()
}

// sellDFI INTERNAL order of amount DFI at price BTC per DFI
func (s *icxSuite) sellDFI(amount, price string, expiry int64) (string, error) {
	tx := ty.CreateOrderTx(s.ctx.Maker, &ty.IcxCreateOrder{
		TokenFrom:     s.ctx.Symbol,
		ChainTo:       s.ctx.Chain,
		ReceivePubkey: s.ctx.MakerPubkey,
		OwnerAddress:  s.ctx.Maker,
		AmountFrom:    amt(amount),
		OrderPrice:    amt(price),
		Expiry:        expiry,
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) offer(orderTx, amount string) (string, error) {
	tx := ty.MakeOfferTx(s.ctx.Taker, &ty.IcxMakeOffer{
		OrderTx:      orderTx,
		Amount:       amt(amount),
		OwnerAddress: s.ctx.Taker,
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) dfcHTLC(from, offerTx, amount string, timeout int64) (string, error) {
	tx := ty.SubmitDFCHTLCTx(from, &ty.IcxSubmitDFCHTLC{
		OfferTx: offerTx,
		Amount:  amt(amount),
		Hash:    s.ctx.Hash,
		Timeout: timeout,
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) extHTLC(from, offerTx, amount, hash, pubkey string, timeout int64) (string, error) {
	tx := ty.SubmitExtHTLCTx(from, &ty.IcxSubmitExtHTLC{
		OfferTx:           offerTx,
		Amount:            amt(amount),
		Hash:              hash,
		HTLCScriptAddress: s.ctx.HTLCScriptAddress(),
		OwnerPubkey:       pubkey,
		Timeout:           timeout,
	}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) claim(from, dfcTx, seed string) (string, error) {
	tx := ty.ClaimDFCHTLCTx(from, &ty.IcxClaimDFCHTLC{DfchtlcTx: dfcTx, Seed: seed}, s.nonce())
	return tx.TxID(), s.chain.exec(tx)
}

func (s *icxSuite) closeOrder(from, orderTx string) error {
	return s.chain.exec(ty.CloseOrderTx(from, &ty.IcxCloseOrder{OrderTx: orderTx}, s.nonce()))
}

func (s *icxSuite) closeOffer(from, offerTx string) error {
	return s.chain.exec(ty.CloseOfferTx(from, &ty.IcxCloseOffer{OfferTx: offerTx}, s.nonce()))
}

// orderAndOffer 15 DFI at 0.01, offer of 0.10 BTC
func (s *icxSuite) orderAndOffer() (string, string) {
	orderTx, err := s.sellDFI("15", "0.01", 0)
	s.Require().NoError(err)
	offerTx, err := s.offer(orderTx, "0.10")
	s.Require().NoError(err)
	return orderTx, offerTx
}

func (s *icxSuite) totalCoins() int64 {
	m := s.chain.coins(s.ctx.Maker)
	t := s.chain.coins(s.ctx.Taker)
	return m.Balance + m.Frozen + t.Balance + t.Frozen
}

func (s *icxSuite) TestCreateOrder() {
	orderTx, err := s.sellDFI("15", "0.01", 0)
	s.Require().NoError(err)
	order := s.chain.order(orderTx)
	s.Equal(ty.OrderInternal, order.Type)
	s.Equal(ty.StatusOpen, order.Status)
	s.Equal(amt("15"), order.AmountToFill)
	s.Equal(s.chain.height+2880, order.ExpiryHeight)

	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt("985"), maker.Balance)
	s.Equal(amt("15"), maker.Frozen)
}

func (s *icxSuite) TestCreateOrderRejected() {
	base := func() *ty.IcxCreateOrder {
		return &ty.IcxCreateOrder{
			TokenFrom:     s.ctx.Symbol,
			ChainTo:       s.ctx.Chain,
			ReceivePubkey: s.ctx.MakerPubkey,
			OwnerAddress:  s.ctx.Maker,
			AmountFrom:    amt("15"),
			OrderPrice:    amt("0.01"),
		}
	}
	cases := []struct {
		name   string
		from   string
		modify func(p *ty.IcxCreateOrder)
		err    error
	}{
		{"both pairs", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.TokenTo = s.ctx.Symbol; p.ChainFrom = s.ctx.Chain }, ty.ErrInvalidSpec},
		{"half pair", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.ChainTo = "" }, ty.ErrInvalidSpec},
		{"foreign chain", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.ChainTo = "ETH" }, ty.ErrInvalidSpec},
		{"bad owner", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.OwnerAddress = "xyz" }, ty.ErrInvalidAddress},
		{"not owner", s.ctx.Taker, func(p *ty.IcxCreateOrder) {}, ty.ErrForbidden},
		{"no pubkey", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.ReceivePubkey = "" }, ty.ErrInvalidPubkey},
		{"bad pubkey", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.ReceivePubkey = "02abcd" }, ty.ErrInvalidPubkey},
		{"zero amount", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.AmountFrom = 0 }, ty.ErrInvalidAmount},
		{"zero price", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.OrderPrice = 0 }, ty.ErrInvalidAmount},
		{"unknown token", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.TokenFrom = "ABC" }, ty.ErrAssetNotFound},
		{"no funds", s.ctx.Maker, func(p *ty.IcxCreateOrder) { p.AmountFrom = amt("1001") }, ty.ErrInsufficientFunds},
	}
	for _, tc := range cases {
		p := base()
		tc.modify(p)
		err := s.chain.exec(ty.CreateOrderTx(tc.from, p, s.nonce()))
		s.Equal(tc.err, err, tc.name)
	}
	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt(makerFunds), maker.Balance)
	s.Equal(int64(0), maker.Frozen)
}

func (s *icxSuite) TestMakeOffer() {
	orderTx, offerTx := s.orderAndOffer()

	order := s.chain.order(orderTx)
	s.Equal(amt("5"), order.AmountToFill)
	s.Equal(amt("10"), order.Reserved)
	s.chain.checkOrderBooks(orderTx)

	// 0.10 BTC * 0.001 DFI per BTC fee * 1000 DFI per BTC
	offer := s.chain.offer(offerTx)
	s.Equal(amt("0.1"), offer.TakerFee)
	s.Equal(amt("10"), offer.Reserved)
	s.Equal(s.chain.height+10, offer.ExpiryHeight)
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt("999.9"), taker.Balance)
	s.Equal(amt("0.1"), taker.Frozen)
}

func (s *icxSuite) TestMakeOfferRejected() {
	orderTx, err := s.sellDFI("15", "0.01", 0)
	s.Require().NoError(err)

	_, err = s.offer(orderTx, "0.16")
	s.Equal(ty.ErrAmountExceedsRemaining, err)
	_, err = s.offer("00", "0.1")
	s.Equal(ty.ErrOrderNotFound, err)
	err = s.chain.exec(ty.MakeOfferTx(s.ctx.Maker, &ty.IcxMakeOffer{
		OrderTx: orderTx, Amount: amt("0.1"), OwnerAddress: s.ctx.Taker,
	}, s.nonce()))
	s.Equal(ty.ErrForbidden, err)
	err = s.chain.exec(ty.MakeOfferTx(s.ctx.Taker, &ty.IcxMakeOffer{
		OrderTx: orderTx, Amount: amt("0.1"), OwnerAddress: s.ctx.Taker, ReceivePubkey: "zz",
	}, s.nonce()))
	s.Equal(ty.ErrInvalidPubkey, err)

	// the whole remaining amount is fine, one satoshi more is not
	offerTx, err := s.offer(orderTx, "0.15")
	s.Require().NoError(err)
	s.Equal(int64(0), s.chain.order(orderTx).AmountToFill)
	_, err = s.offer(orderTx, "0.00000001")
	s.Equal(ty.ErrAmountExceedsRemaining, err)
	s.NotEmpty(offerTx)
}

func (s *icxSuite) TestHugeOfferDoesNotWrap() {
	orderTx, err := s.sellDFI("10", "0.00000001", 0)
	s.Require().NoError(err)

	// 2^56+1 satoshi at 1 satoshi per DFI is far beyond the order
	err = s.chain.exec(ty.MakeOfferTx(s.ctx.Taker, &ty.IcxMakeOffer{
		OrderTx: orderTx, Amount: 72057594037927937, OwnerAddress: s.ctx.Taker,
	}, s.nonce()))
	s.Equal(ty.ErrAmountExceedsRemaining, err)
	order := s.chain.order(orderTx)
	s.Equal(amt("10"), order.AmountToFill)
	s.Equal(int64(0), order.Reserved)

	_, err = s.offer(orderTx, "0.00000011")
	s.Equal(ty.ErrAmountExceedsRemaining, err)
	_, err = s.offer(orderTx, "0.0000001")
	s.Require().NoError(err)
	s.Equal(int64(0), s.chain.order(orderTx).AmountToFill)
}

func (s *icxSuite) TestOfferFeeNeedsFunds() {
	orderTx, err := s.sellDFI("900", "0.01", 0)
	s.Require().NoError(err)
	// fee of 8 BTC is 8 DFI, the taker has plenty
	_, err = s.offer(orderTx, "8")
	s.Require().NoError(err)

	poor, _ := util.Genaddress()
	err = s.chain.exec(ty.MakeOfferTx(poor, &ty.IcxMakeOffer{
		OrderTx: orderTx, Amount: amt("0.1"), OwnerAddress: poor,
	}, s.nonce()))
	s.Equal(ty.ErrInsufficientFunds, err)
}

func (s *icxSuite) TestSwap() {
	total := s.totalCoins()
	orderTx, offerTx := s.orderAndOffer()

	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	dfc := s.chain.dfcHTLC(dfcTx)
	s.Equal(ty.HTLCOpen, dfc.Status)
	s.Equal(int64(20), dfc.Timeout)
	s.Equal(s.chain.height+20, dfc.RefundHeight)
	s.Equal(amt("0.1"), dfc.MakerDeposit)
	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt("984.9"), maker.Balance)
	s.Equal(amt("15.1"), maker.Frozen)

	extTx, err := s.extHTLC(s.ctx.Taker, offerTx, "0.1", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)
	ext := s.chain.extHTLC(extTx)
	s.Equal(dfc.Hash, ext.Hash)
	s.Equal(ty.HTLCOpen, ext.Status)

	_, err = s.claim(s.ctx.Taker, dfcTx, s.ctx.Seed)
	s.Require().NoError(err)

	s.Equal(ty.HTLCClaimed, s.chain.dfcHTLC(dfcTx).Status)
	s.Equal(ty.HTLCClaimed, s.chain.extHTLC(extTx).Status)
	s.Equal(ty.StatusFilled, s.chain.offer(offerTx).Status)
	order := s.chain.order(orderTx)
	s.Equal(ty.StatusOpen, order.Status)
	s.Equal(amt("5"), order.AmountToFill)
	s.Equal(int64(0), order.Reserved)
	s.Equal(amt("10"), order.Consumed)
	s.chain.checkOrderBooks(orderTx)

	// taker: +10 DFI minus the 0.1 fee; maker: deposit back plus the fee
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt("1009.9"), taker.Balance)
	s.Equal(int64(0), taker.Frozen)
	maker = s.chain.coins(s.ctx.Maker)
	s.Equal(amt("985.1"), maker.Balance)
	s.Equal(amt("5"), maker.Frozen)
	s.Equal(total, s.totalCoins())

	s.Require().NoError(s.closeOrder(s.ctx.Maker, orderTx))
	s.Equal(ty.StatusClosed, s.chain.order(orderTx).Status)
	maker = s.chain.coins(s.ctx.Maker)
	s.Equal(amt("990.1"), maker.Balance)
	s.Equal(int64(0), maker.Frozen)
}

func (s *icxSuite) TestSwapFillsOrder() {
	orderTx, err := s.sellDFI("10", "0.01", 0)
	s.Require().NoError(err)
	offerTx, err := s.offer(orderTx, "0.10")
	s.Require().NoError(err)
	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)
	// anyone may reveal the seed, funds still go to the taker
	_, err = s.claim(s.ctx.Manager, dfcTx, s.ctx.Seed)
	s.Require().NoError(err)

	order := s.chain.order(orderTx)
	s.Equal(ty.StatusFilled, order.Status)
	s.Equal(s.chain.height, order.CloseHeight)
	s.Equal(amt("1009.9"), s.chain.coins(s.ctx.Taker).Balance)
	s.Equal(int64(0), s.chain.coins(s.ctx.Maker).Frozen)
	s.Equal(ty.ErrOrderNotOpen, s.closeOrder(s.ctx.Maker, orderTx))
}

func (s *icxSuite) TestExtHTLCBeforeDFCHTLC() {
	_, offerTx := s.orderAndOffer()
	_, err := s.extHTLC(s.ctx.Taker, offerTx, "0.1", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Equal(ty.ErrNoDFCHTLC, err)

	reply, err := s.chain.query(ty.FuncListHTLCs, &ty.ReqListHTLCs{OfferTx: offerTx, Closed: true})
	s.Require().NoError(err)
	s.Empty(reply.(*ty.ReplyListHTLCs).HTLCs)
	s.Equal(ty.StatusOpen, s.chain.offer(offerTx).Status)
}

func (s *icxSuite) TestClaimWrongSeed() {
	_, offerTx := s.orderAndOffer()
	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	before := s.chain.coins(s.ctx.Taker)

	seed := s.ctx.Seed
	s.ctx.NewSecret()
	_, err = s.claim(s.ctx.Taker, dfcTx, s.ctx.Seed)
	s.Equal(ty.ErrSeedMismatch, err)
	_, err = s.claim(s.ctx.Taker, dfcTx, "not-hex")
	s.Equal(ty.ErrInvalidSeed, err)

	s.Equal(ty.HTLCOpen, s.chain.dfcHTLC(dfcTx).Status)
	s.Equal(before, s.chain.coins(s.ctx.Taker))

	_, err = s.claim(s.ctx.Taker, dfcTx, seed)
	s.Require().NoError(err)
	_, err = s.claim(s.ctx.Taker, dfcTx, seed)
	s.Equal(ty.ErrHTLCNotOpen, err)
}

func (s *icxSuite) TestDFCHTLCRejected() {
	orderTx, offerTx := s.orderAndOffer()

	_, err := s.dfcHTLC(s.ctx.Taker, offerTx, "10", 0)
	s.Equal(ty.ErrForbidden, err)
	_, err = s.dfcHTLC(s.ctx.Maker, offerTx, "10.00000001", 0)
	s.Equal(ty.ErrAmountExceedsOffer, err)
	_, err = s.dfcHTLC(s.ctx.Maker, offerTx, "10", 19)
	s.Equal(ty.ErrTimeoutTooShort, err)
	_, err = s.dfcHTLC(s.ctx.Maker, "00", "10", 0)
	s.Equal(ty.ErrOfferNotFound, err)
	err = s.chain.exec(ty.SubmitDFCHTLCTx(s.ctx.Maker, &ty.IcxSubmitDFCHTLC{
		OfferTx: offerTx, Amount: amt("10"), Hash: "abcd",
	}, s.nonce()))
	s.Equal(ty.ErrInvalidHash, err)

	_, err = s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	_, err = s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Equal(ty.ErrDFCHTLCExists, err)

	s.Equal(ty.ErrOfferHasHTLC, s.closeOffer(s.ctx.Taker, offerTx))
	s.Equal(ty.ErrOrderHasOpenHTLC, s.closeOrder(s.ctx.Maker, orderTx))
}

func (s *icxSuite) TestExtHTLCRejected() {
	_, offerTx := s.orderAndOffer()
	_, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	hash := s.ctx.Hash

	_, err = s.extHTLC(s.ctx.Maker, offerTx, "0.1", hash, s.ctx.TakerPubkey, 24)
	s.Equal(ty.ErrForbidden, err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", common.HashHex(common.Sha256([]byte("other"))), s.ctx.TakerPubkey, 24)
	s.Equal(ty.ErrHashMismatch, err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.10000002", hash, s.ctx.TakerPubkey, 24)
	s.Equal(ty.ErrAmountMismatch, err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", hash, s.ctx.TakerPubkey, 13)
	s.Equal(ty.ErrTimeoutTooShort, err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", hash, s.ctx.TakerPubkey, 200)
	s.Equal(ty.ErrOrderExpiresBeforeHTLC, err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", hash, "0011", 24)
	s.Equal(ty.ErrInvalidPubkey, err)
	err = s.chain.exec(ty.SubmitExtHTLCTx(s.ctx.Taker, &ty.IcxSubmitExtHTLC{
		OfferTx: offerTx, Amount: amt("0.1"), Hash: hash, HTLCScriptAddress: s.ctx.Maker,
		OwnerPubkey: s.ctx.TakerPubkey, Timeout: 24,
	}, s.nonce()))
	s.Equal(ty.ErrInvalidAddress, err)

	// one satoshi of truncation is tolerated
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.10000001", hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)
	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.1", hash, s.ctx.TakerPubkey, 24)
	s.Equal(ty.ErrExtHTLCExists, err)
}

func (s *icxSuite) TestOverpayRefund() {
	orderTx, offerTx := s.orderAndOffer()
	_, err := s.dfcHTLC(s.ctx.Maker, offerTx, "5", 0)
	s.Require().NoError(err)

	offer := s.chain.offer(offerTx)
	s.Equal(amt("0.05"), offer.TakerFee)
	s.Equal(amt("5"), offer.Reserved)
	s.Equal(amt("0.05"), offer.Amount)
	order := s.chain.order(orderTx)
	s.Equal(amt("10"), order.AmountToFill)
	s.Equal(amt("5"), order.Reserved)
	s.chain.checkOrderBooks(orderTx)

	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt("999.95"), taker.Balance)
	s.Equal(amt("0.05"), taker.Frozen)
	s.Equal(amt("15.05"), s.chain.coins(s.ctx.Maker).Frozen)

	_, err = s.extHTLC(s.ctx.Taker, offerTx, "0.05", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)
}

func (s *icxSuite) TestCloseOffer() {
	orderTx, offerTx := s.orderAndOffer()
	s.Equal(ty.ErrForbidden, s.closeOffer(s.ctx.Maker, offerTx))
	s.Require().NoError(s.closeOffer(s.ctx.Taker, offerTx))

	offer := s.chain.offer(offerTx)
	s.Equal(ty.StatusClosed, offer.Status)
	s.Equal(s.chain.height, offer.CloseHeight)
	order := s.chain.order(orderTx)
	s.Equal(amt("15"), order.AmountToFill)
	s.Equal(int64(0), order.Reserved)
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt(takerFunds), taker.Balance)
	s.Equal(int64(0), taker.Frozen)
	s.Equal(ty.ErrOfferNotOpen, s.closeOffer(s.ctx.Taker, offerTx))
}

func (s *icxSuite) TestCloseOrder() {
	orderTx, offerTx := s.orderAndOffer()
	s.Equal(ty.ErrForbidden, s.closeOrder(s.ctx.Taker, orderTx))
	s.Require().NoError(s.closeOrder(s.ctx.Maker, orderTx))

	s.Equal(ty.StatusClosed, s.chain.order(orderTx).Status)
	s.Equal(ty.StatusClosed, s.chain.offer(offerTx).Status)
	s.Equal(amt(makerFunds), s.chain.coins(s.ctx.Maker).Balance)
	s.Equal(amt(takerFunds), s.chain.coins(s.ctx.Taker).Balance)

	_, err := s.offer(orderTx, "0.01")
	s.Equal(ty.ErrOrderNotOpen, err)
}

func (s *icxSuite) TestRefundDFCHTLC() {
	total := s.totalCoins()
	orderTx, offerTx := s.orderAndOffer()
	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	extTx, err := s.extHTLC(s.ctx.Taker, offerTx, "0.1", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)

	refundHeight := s.chain.dfcHTLC(dfcTx).RefundHeight
	s.chain.advanceTo(refundHeight)
	s.Equal(ty.HTLCOpen, s.chain.dfcHTLC(dfcTx).Status)
	s.chain.advance(1)

	s.Equal(ty.HTLCRefunded, s.chain.dfcHTLC(dfcTx).Status)
	s.Equal(ty.HTLCExpired, s.chain.extHTLC(extTx).Status)
	s.Equal(ty.StatusExpired, s.chain.offer(offerTx).Status)
	// the amount goes back to the open order
	order := s.chain.order(orderTx)
	s.Equal(ty.StatusOpen, order.Status)
	s.Equal(amt("15"), order.AmountToFill)
	s.Equal(int64(0), order.Reserved)

	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt("985"), maker.Balance)
	s.Equal(amt("15"), maker.Frozen)
	taker := s.chain.coins(s.ctx.Taker)
	s.Equal(amt(takerFunds), taker.Balance)
	s.Equal(int64(0), taker.Frozen)
	s.Equal(total, s.totalCoins())

	_, err = s.claim(s.ctx.Taker, dfcTx, s.ctx.Seed)
	s.Equal(ty.ErrHTLCNotOpen, err)
}

func (s *icxSuite) TestOfferExpiry() {
	orderTx, offerTx := s.orderAndOffer()
	expiry := s.chain.offer(offerTx).ExpiryHeight
	s.chain.advanceTo(expiry)
	s.Equal(ty.StatusOpen, s.chain.offer(offerTx).Status)
	s.chain.advance(1)

	offer := s.chain.offer(offerTx)
	s.Equal(ty.StatusExpired, offer.Status)
	s.Equal(amt(takerFunds), s.chain.coins(s.ctx.Taker).Balance)
	s.Equal(amt("15"), s.chain.order(orderTx).AmountToFill)
}

func (s *icxSuite) TestOfferWithHTLCOutlivesExpiry() {
	_, offerTx := s.orderAndOffer()
	_, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	s.chain.advanceTo(s.chain.offer(offerTx).ExpiryHeight + 1)
	s.Equal(ty.StatusOpen, s.chain.offer(offerTx).Status)
}

func (s *icxSuite) TestOrderExpiry() {
	orderTx, err := s.sellDFI("15", "0.01", 5)
	s.Require().NoError(err)
	offerTx, err := s.offer(orderTx, "0.10")
	s.Require().NoError(err)

	s.chain.advanceTo(s.chain.order(orderTx).ExpiryHeight)
	s.Equal(ty.StatusOpen, s.chain.order(orderTx).Status)
	s.chain.advance(1)

	s.Equal(ty.StatusExpired, s.chain.order(orderTx).Status)
	s.Equal(ty.StatusExpired, s.chain.offer(offerTx).Status)
	s.Equal(amt(makerFunds), s.chain.coins(s.ctx.Maker).Balance)
	s.Equal(amt(takerFunds), s.chain.coins(s.ctx.Taker).Balance)
}

func (s *icxSuite) TestOrderExpiryKeepsHTLCReservation() {
	orderTx, err := s.sellDFI("15", "0.01", 8)
	s.Require().NoError(err)
	offerTx, err := s.offer(orderTx, "0.10")
	s.Require().NoError(err)
	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)

	s.chain.advanceTo(s.chain.order(orderTx).ExpiryHeight + 1)
	s.Equal(ty.StatusExpired, s.chain.order(orderTx).Status)
	s.Equal(ty.StatusOpen, s.chain.offer(offerTx).Status)
	maker := s.chain.coins(s.ctx.Maker)
	s.Equal(amt("10.1"), maker.Frozen)

	s.chain.advanceTo(s.chain.dfcHTLC(dfcTx).RefundHeight + 1)
	s.Equal(ty.HTLCRefunded, s.chain.dfcHTLC(dfcTx).Status)
	maker = s.chain.coins(s.ctx.Maker)
	s.Equal(amt(makerFunds), maker.Balance)
	s.Equal(int64(0), maker.Frozen)
	s.chain.checkOrderBooks(orderTx)
}

func (s *icxSuite) TestQueries() {
	orderTx, offerTx := s.orderAndOffer()
	other, err := s.sellDFI("1", "0.02", 0)
	s.Require().NoError(err)

	reply, err := s.chain.query(ty.FuncListOrders, &ty.ReqListOrders{})
	s.Require().NoError(err)
	orders := reply.(*ty.ReplyListOrders).Orders
	s.Len(orders, 2)
	s.Equal("INTERNAL", orders[orderTx].Type)
	s.Equal("OPEN", orders[orderTx].Status)
	s.Equal("5.00000000", orders[orderTx].AmountToFill)

	reply, err = s.chain.query(ty.FuncListOrders, &ty.ReqListOrders{Limit: 1})
	s.Require().NoError(err)
	s.Len(reply.(*ty.ReplyListOrders).Orders, 1)

	reply, err = s.chain.query(ty.FuncListOrders, &ty.ReqListOrders{OrderTx: orderTx})
	s.Require().NoError(err)
	offers := reply.(*ty.ReplyListOrders).Offers
	s.Require().Len(offers, 1)
	s.Equal("0.10000000", offers[offerTx].TakerFee)

	reply, err = s.chain.query(ty.FuncGetOrder, &types.ReqString{Data: offerTx})
	s.Require().NoError(err)
	s.Equal("OPEN", reply.(*ty.ReplyListOrders).Offers[offerTx].Status)
	_, err = s.chain.query(ty.FuncGetOrder, &types.ReqString{Data: "00"})
	s.Equal(ty.ErrOrderNotFound, err)

	s.Require().NoError(s.closeOrder(s.ctx.Maker, other))
	reply, err = s.chain.query(ty.FuncListOrders, &ty.ReqListOrders{Closed: true})
	s.Require().NoError(err)
	closed := reply.(*ty.ReplyListOrders).Orders
	s.Len(closed, 1)
	s.Equal("CLOSED", closed[other].Status)

	dfcTx, err := s.dfcHTLC(s.ctx.Maker, offerTx, "10", 0)
	s.Require().NoError(err)
	extTx, err := s.extHTLC(s.ctx.Taker, offerTx, "0.1", s.ctx.Hash, s.ctx.TakerPubkey, 24)
	s.Require().NoError(err)
	reply, err = s.chain.query(ty.FuncListHTLCs, &ty.ReqListHTLCs{OfferTx: offerTx})
	s.Require().NoError(err)
	htlcs := reply.(*ty.ReplyListHTLCs).HTLCs
	s.Require().Len(htlcs, 2)
	s.Equal(ty.HTLCKindDFC, htlcs[dfcTx].Type)
	s.Equal("0.10000000", htlcs[dfcTx].DFC.AmountInBTC)
	s.Equal(ty.HTLCKindExternal, htlcs[extTx].Type)

	claimTx, err := s.claim(s.ctx.Taker, dfcTx, s.ctx.Seed)
	s.Require().NoError(err)
	reply, err = s.chain.query(ty.FuncListHTLCs, &ty.ReqListHTLCs{OfferTx: offerTx})
	s.Require().NoError(err)
	s.Empty(reply.(*ty.ReplyListHTLCs).HTLCs)
	reply, err = s.chain.query(ty.FuncListHTLCs, &ty.ReqListHTLCs{OfferTx: offerTx, Closed: true})
	s.Require().NoError(err)
	htlcs = reply.(*ty.ReplyListHTLCs).HTLCs
	s.Require().Len(htlcs, 3)
	for _, v := range htlcs {
		s.NoError(v.Validate())
		s.Equal("CLAIMED", v.Status())
	}
	s.Equal(s.ctx.Seed, htlcs[claimTx].Claim.Seed)

	reply, err = s.chain.query(ty.FuncListOrders, &ty.ReqListOrders{OrderTx: orderTx, Closed: true})
	s.Require().NoError(err)
	s.Equal("FILLED", reply.(*ty.ReplyListOrders).Offers[offerTx].Status)

	_, err = s.chain.query("Nope", &types.ReqString{})
	s.Equal(types.ErrQueryNotSupport, err)
}

func (s *icxSuite) TestActionNotSupported() {
	tx := types.CreateTx(ty.IcxX, &ty.IcxAction{Ty: ty.IcxActionMakeOffer}, s.ctx.Taker, s.nonce())
	s.Equal(types.ErrActionNotSupport, s.chain.exec(tx))
}
