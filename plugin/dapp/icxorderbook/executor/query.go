// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// Query ListOrders, GetOrder and ListHTLCs
func (icx *ICX) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case ty.FuncListOrders:
		var req ty.ReqListOrders
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return icx.listOrders(&req)
	case ty.FuncGetOrder:
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return icx.getOrder(req.Data)
	case ty.FuncListHTLCs:
		var req ty.ReqListHTLCs
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return icx.listHTLCs(&req)
	}
	xlog.Error("icx Query", "Query type not supprt with func name", funcName)
	return nil, types.ErrQueryNotSupport
}

func (icx *ICX) reader() *icxDB {
	return newIcxDB(icx, nil)
}

func wantStatus(closed bool, open bool) bool {
	return closed != open
}

func listIDs(db dbm.KVDB, prefix []byte) ([]string, error) {
	values, err := db.List(prefix, nil, 0, dbm.ListASC)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		ids = append(ids, string(v))
	}
	return ids, nil
}

func full(limit int32, n int) bool {
	return limit > 0 && n >= int(limit)
}

func (icx *ICX) listOrders(req *ty.ReqListOrders) (types.Message, error) {
	a := icx.reader()
	reply := &ty.ReplyListOrders{}
	if req.OrderTx != "" {
		if _, err := a.getOrder(req.OrderTx); err != nil {
			return nil, err
		}
		ids, err := listIDs(icx.GetLocalDB(), calcOrderOfferPrefix(req.OrderTx))
		if err != nil {
			return nil, err
		}
		reply.Offers = make(map[string]*ty.OfferView)
		for _, id := range ids {
			offer, err := a.getOffer(id)
			if err != nil {
				return nil, err
			}
			if !wantStatus(req.Closed, offer.Status == ty.StatusOpen) {
				continue
			}
			reply.Offers[id] = ty.NewOfferView(offer)
			if full(req.Limit, len(reply.Offers)) {
				break
			}
		}
		return reply, nil
	}

	statuses := []ty.Status{ty.StatusOpen}
	if req.Closed {
		statuses = []ty.Status{ty.StatusClosed, ty.StatusExpired, ty.StatusFilled}
	}
	reply.Orders = make(map[string]*ty.OrderView)
	for _, status := range statuses {
		ids, err := listIDs(icx.GetLocalDB(), calcOrderStatusPrefix(status))
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if full(req.Limit, len(reply.Orders)) {
				return reply, nil
			}
			order, err := a.getOrder(id)
			if err != nil {
				return nil, err
			}
			reply.Orders[id] = ty.NewOrderView(order)
		}
	}
	return reply, nil
}

// getOrder id of an order or of an offer
func (icx *ICX) getOrder(id string) (types.Message, error) {
	a := icx.reader()
	if order, err := a.getOrder(id); err == nil {
		return &ty.ReplyListOrders{Orders: map[string]*ty.OrderView{id: ty.NewOrderView(order)}}, nil
	}
	offer, err := a.getOffer(id)
	if err != nil {
		return nil, ty.ErrOrderNotFound
	}
	return &ty.ReplyListOrders{Offers: map[string]*ty.OfferView{id: ty.NewOfferView(offer)}}, nil
}

func (icx *ICX) listHTLCs(req *ty.ReqListHTLCs) (types.Message, error) {
	a := icx.reader()
	offer, err := a.getOffer(req.OfferTx)
	if err != nil {
		return nil, err
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return nil, err
	}
	values, err := icx.GetLocalDB().List(calcOfferHTLCPrefix(req.OfferTx), nil, 0, dbm.ListASC)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	reply := &ty.ReplyListHTLCs{HTLCs: make(map[string]*ty.HTLCView)}
	// index values carry the kind, ids come from the offer record
	htlcs := a.getOfferHTLCs(req.OfferTx)
	for _, v := range values {
		switch ty.HTLCKind(v) {
		case ty.HTLCKindDFC:
			h, err := a.getDFCHTLC(htlcs.DFC)
			if err != nil {
				return nil, err
			}
			if !req.Closed && h.Status != ty.HTLCOpen {
				continue
			}
			foreign, err := foreignAmount(order, h.Amount)
			if err != nil {
				return nil, err
			}
			reply.HTLCs[h.ID] = ty.NewDFCHTLCView(h, foreign)
		case ty.HTLCKindExternal:
			h, err := a.getExtHTLC(htlcs.Ext)
			if err != nil {
				return nil, err
			}
			if !req.Closed && h.Status != ty.HTLCOpen {
				continue
			}
			reply.HTLCs[h.ID] = ty.NewExtHTLCView(h)
		case ty.HTLCKindClaimDFC:
			if !req.Closed {
				continue
			}
			c, err := a.getClaim(htlcs.Claim)
			if err != nil {
				return nil, err
			}
			reply.HTLCs[c.ID] = ty.NewClaimView(c)
		default:
			xlog.Error("listHTLCs unknown kind", "offer", req.OfferTx, "kind", string(v))
			continue
		}
		if full(req.Limit, len(reply.HTLCs)) {
			break
		}
	}
	return reply, nil
}
