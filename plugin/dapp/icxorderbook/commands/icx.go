// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands icx-cli order book commands
package commands

import (
	"sort"

	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/jsonclient"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/spf13/cobra"
)

// IcxCmd icx command
func IcxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icx",
		Short: "Interchain exchange order book",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateOrderCmd(),
		CloseOrderCmd(),
		MakeOfferCmd(),
		CloseOfferCmd(),
		SubmitDFCHTLCCmd(),
		SubmitExtHTLCCmd(),
		ClaimDFCHTLCCmd(),
		ListOrdersCmd(),
		GetOrderCmd(),
		ListHTLCsCmd(),
	)
	return cmd
}

func method(name string) string {
	return ty.JRPCName + "." + name
}

func sendTx(cmd *cobra.Command, name string, params interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res rpctypes.ReplyTxID
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method(name), params, &res)
	ctx.Run()
}

// CreateOrderCmd create order
func CreateOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_order",
		Short: "Create an order selling a token for BTC or BTC for a token",
		Run:   createOrder,
	}
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	cmd.Flags().StringP("token_from", "t", "", "token sold, with --chain_to")
	cmd.Flags().StringP("chain_to", "c", "", "chain bought, BTC")
	cmd.Flags().StringP("receive_pubkey", "p", "", "pubkey receiving BTC")
	cmd.Flags().StringP("chain_from", "C", "", "chain sold, BTC, with --token_to")
	cmd.Flags().StringP("token_to", "T", "", "token bought")
	cmd.Flags().StringP("amount", "a", "", "amount sold")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("price", "r", "", "price, units bought per unit sold")
	cmd.MarkFlagRequired("price")
	cmd.Flags().Int64P("expiry", "e", 0, "blocks until expiry, 0 for the default")
	return cmd
}

func createOrder(cmd *cobra.Command, args []string) {
	params := &ty.CreateOrderReq{}
	params.OwnerAddress, _ = cmd.Flags().GetString("owner")
	params.TokenFrom, _ = cmd.Flags().GetString("token_from")
	params.ChainTo, _ = cmd.Flags().GetString("chain_to")
	params.ReceivePubkey, _ = cmd.Flags().GetString("receive_pubkey")
	params.ChainFrom, _ = cmd.Flags().GetString("chain_from")
	params.TokenTo, _ = cmd.Flags().GetString("token_to")
	params.AmountFrom, _ = cmd.Flags().GetString("amount")
	params.OrderPrice, _ = cmd.Flags().GetString("price")
	params.Expiry, _ = cmd.Flags().GetInt64("expiry")
	sendTx(cmd, "CreateOrder", params)
}

// CloseOrderCmd close order
func CloseOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close_order",
		Short: "Close an open order",
		Run:   closeOrder,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("order", "i", "", "order txid")
	cmd.MarkFlagRequired("order")
	return cmd
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
}

func closeOrder(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	order, _ := cmd.Flags().GetString("order")
	sendTx(cmd, "CloseOrder", &ty.CloseOrderReq{From: from, OrderTx: order})
}

// MakeOfferCmd make offer
func MakeOfferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make_offer",
		Short: "Make an offer against an order",
		Run:   makeOffer,
	}
	cmd.Flags().StringP("order", "i", "", "order txid")
	cmd.MarkFlagRequired("order")
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	cmd.Flags().StringP("amount", "a", "", "amount offered")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("receive_pubkey", "p", "", "pubkey receiving BTC, orders selling BTC only")
	cmd.Flags().Int64P("expiry", "e", 0, "blocks until expiry, 0 for the default")
	return cmd
}

func makeOffer(cmd *cobra.Command, args []string) {
	params := &ty.MakeOfferReq{}
	params.OrderTx, _ = cmd.Flags().GetString("order")
	params.OwnerAddress, _ = cmd.Flags().GetString("owner")
	params.Amount, _ = cmd.Flags().GetString("amount")
	params.ReceivePubkey, _ = cmd.Flags().GetString("receive_pubkey")
	params.Expiry, _ = cmd.Flags().GetInt64("expiry")
	sendTx(cmd, "MakeOffer", params)
}

// CloseOfferCmd close offer
func CloseOfferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close_offer",
		Short: "Close an open offer",
		Run:   closeOffer,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("offer", "i", "", "offer txid")
	cmd.MarkFlagRequired("offer")
	return cmd
}

func closeOffer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	offer, _ := cmd.Flags().GetString("offer")
	sendTx(cmd, "CloseOffer", &ty.CloseOfferReq{From: from, OfferTx: offer})
}

// SubmitDFCHTLCCmd submit dfc htlc
func SubmitDFCHTLCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit_dfchtlc",
		Short: "Lock the native side of an offer",
		Run:   submitDFCHTLC,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("offer", "i", "", "offer txid")
	cmd.MarkFlagRequired("offer")
	cmd.Flags().StringP("amount", "a", "", "native amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("hash", "s", "", "sha256 of the seed")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().Int64P("timeout", "t", 0, "blocks until refund, 0 for the minimum")
	return cmd
}

func submitDFCHTLC(cmd *cobra.Command, args []string) {
	params := &ty.SubmitDFCHTLCReq{}
	params.From, _ = cmd.Flags().GetString("from")
	params.OfferTx, _ = cmd.Flags().GetString("offer")
	params.Amount, _ = cmd.Flags().GetString("amount")
	params.Hash, _ = cmd.Flags().GetString("hash")
	params.Timeout, _ = cmd.Flags().GetInt64("timeout")
	sendTx(cmd, "SubmitDFCHTLC", params)
}

// SubmitExtHTLCCmd submit external htlc
func SubmitExtHTLCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit_exthtlc",
		Short: "Record the BTC htlc of an offer",
		Run:   submitExtHTLC,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("offer", "i", "", "offer txid")
	cmd.MarkFlagRequired("offer")
	cmd.Flags().StringP("amount", "a", "", "BTC amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("hash", "s", "", "sha256 of the seed")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().StringP("script_address", "d", "", "p2sh address of the htlc script")
	cmd.MarkFlagRequired("script_address")
	cmd.Flags().StringP("owner_pubkey", "p", "", "pubkey of the htlc owner")
	cmd.MarkFlagRequired("owner_pubkey")
	cmd.Flags().Int64P("timeout", "t", 0, "BTC blocks until refund")
	cmd.MarkFlagRequired("timeout")
	return cmd
}

func submitExtHTLC(cmd *cobra.Command, args []string) {
	params := &ty.SubmitExtHTLCReq{}
	params.From, _ = cmd.Flags().GetString("from")
	params.OfferTx, _ = cmd.Flags().GetString("offer")
	params.Amount, _ = cmd.Flags().GetString("amount")
	params.Hash, _ = cmd.Flags().GetString("hash")
	params.HTLCScriptAddress, _ = cmd.Flags().GetString("script_address")
	params.OwnerPubkey, _ = cmd.Flags().GetString("owner_pubkey")
	params.Timeout, _ = cmd.Flags().GetInt64("timeout")
	sendTx(cmd, "SubmitExtHTLC", params)
}

// ClaimDFCHTLCCmd claim dfc htlc
func ClaimDFCHTLCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim_dfchtlc",
		Short: "Claim a DFC htlc with its seed",
		Run:   claimDFCHTLC,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("htlc", "i", "", "dfc htlc txid")
	cmd.MarkFlagRequired("htlc")
	cmd.Flags().StringP("seed", "s", "", "seed hex")
	cmd.MarkFlagRequired("seed")
	return cmd
}

func claimDFCHTLC(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	htlc, _ := cmd.Flags().GetString("htlc")
	seed, _ := cmd.Flags().GetString("seed")
	sendTx(cmd, "ClaimDFCHTLC", &ty.ClaimDFCHTLCReq{From: from, DfchtlcTx: htlc, Seed: seed})
}

// ListOrdersCmd list orders, or the offers of one order
func ListOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list_orders",
		Short: "List orders, or the offers of --order",
		Run:   listOrders,
	}
	cmd.Flags().StringP("order", "i", "", "order txid")
	cmd.Flags().BoolP("closed", "x", false, "closed ones instead of open ones")
	cmd.Flags().Int32P("limit", "l", 0, "max entries, 0 for all")
	return cmd
}

func listOrders(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := &ty.ReqListOrders{}
	params.OrderTx, _ = cmd.Flags().GetString("order")
	params.Closed, _ = cmd.Flags().GetBool("closed")
	params.Limit, _ = cmd.Flags().GetInt32("limit")
	var res ty.ReplyListOrders
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("ListOrders"), params, &res)
	ctx.SetResultCb(parseOrderList)
	ctx.Run()
}

type orderEntry struct {
	ID string `json:"id"`
	*ty.OrderView
}

type offerEntry struct {
	ID string `json:"id"`
	*ty.OfferView
}

type orderListResult struct {
	Orders []*orderEntry `json:"orders,omitempty"`
	Offers []*offerEntry `json:"offers,omitempty"`
}

// parseOrderList map reply to lists ordered by txid
func parseOrderList(arg interface{}) (interface{}, error) {
	res := arg.(*ty.ReplyListOrders)
	result := &orderListResult{}
	for id, v := range res.Orders {
		result.Orders = append(result.Orders, &orderEntry{ID: id, OrderView: v})
	}
	for id, v := range res.Offers {
		result.Offers = append(result.Offers, &offerEntry{ID: id, OfferView: v})
	}
	sort.Slice(result.Orders, func(i, j int) bool { return result.Orders[i].ID < result.Orders[j].ID })
	sort.Slice(result.Offers, func(i, j int) bool { return result.Offers[i].ID < result.Offers[j].ID })
	return result, nil
}

// GetOrderCmd one order or offer
func GetOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_order",
		Short: "Get an order or an offer",
		Run:   getOrder,
	}
	cmd.Flags().StringP("id", "i", "", "order or offer txid")
	cmd.MarkFlagRequired("id")
	return cmd
}

func getOrder(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	var res ty.ReplyListOrders
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetOrder"), &types.ReqString{Data: id}, &res)
	ctx.SetResultCb(parseOrderList)
	ctx.Run()
}

// ListHTLCsCmd htlcs of an offer
func ListHTLCsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list_htlcs",
		Short: "List the htlcs of an offer",
		Run:   listHTLCs,
	}
	cmd.Flags().StringP("offer", "i", "", "offer txid")
	cmd.MarkFlagRequired("offer")
	cmd.Flags().BoolP("closed", "x", false, "include closed htlcs and claims")
	cmd.Flags().Int32P("limit", "l", 0, "max entries, 0 for all")
	return cmd
}

func listHTLCs(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := &ty.ReqListHTLCs{}
	params.OfferTx, _ = cmd.Flags().GetString("offer")
	params.Closed, _ = cmd.Flags().GetBool("closed")
	params.Limit, _ = cmd.Flags().GetInt32("limit")
	var res ty.ReplyListHTLCs
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("ListHTLCs"), params, &res)
	ctx.Run()
}
