// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// ExecLocal secondary indexes built from the receipt logs
func (icx *ICX) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt == nil || receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		kv, err := localKVs(item)
		if err != nil {
			xlog.Error("ExecLocal", "ty", item.Ty, "err", err)
			return nil, err
		}
		set.KV = append(set.KV, kv...)
	}
	return set, nil
}

func localKVs(item *types.ReceiptLog) (kv []*types.KeyValue, err error) {
	switch item.Ty {
	case ty.TyLogICXOrder:
		var log ty.ReceiptICXOrder
		if err = types.Decode(item.Log, &log); err != nil {
			return nil, err
		}
		if log.PrevStatus != 0 {
			kv = append(kv, &types.KeyValue{Key: calcOrderStatusKey(log.PrevStatus, log.Order.ID)})
		}
		kv = append(kv, &types.KeyValue{Key: calcOrderStatusKey(log.Order.Status, log.Order.ID), Value: []byte(log.Order.ID)})
	case ty.TyLogICXOffer:
		var log ty.ReceiptICXOffer
		if err = types.Decode(item.Log, &log); err != nil {
			return nil, err
		}
		if log.PrevStatus == 0 {
			kv = append(kv, &types.KeyValue{Key: calcOrderOfferKey(log.Offer.OrderTx, log.Offer.ID), Value: []byte(log.Offer.ID)})
		} else {
			kv = append(kv, &types.KeyValue{Key: calcOfferStatusKey(log.PrevStatus, log.Offer.ID)})
		}
		kv = append(kv, &types.KeyValue{Key: calcOfferStatusKey(log.Offer.Status, log.Offer.ID), Value: []byte(log.Offer.ID)})
	case ty.TyLogICXDFCHTLC:
		var log ty.ReceiptICXDFCHTLC
		if err = types.Decode(item.Log, &log); err != nil {
			return nil, err
		}
		if log.PrevStatus == 0 {
			kv = append(kv, &types.KeyValue{Key: calcOfferHTLCKey(log.HTLC.OfferTx, log.HTLC.ID), Value: []byte(ty.HTLCKindDFC)})
		}
	case ty.TyLogICXExtHTLC:
		var log ty.ReceiptICXExtHTLC
		if err = types.Decode(item.Log, &log); err != nil {
			return nil, err
		}
		if log.PrevStatus == 0 {
			kv = append(kv, &types.KeyValue{Key: calcOfferHTLCKey(log.HTLC.OfferTx, log.HTLC.ID), Value: []byte(ty.HTLCKindExternal)})
		}
	case ty.TyLogICXClaimDFCHTLC:
		var log ty.ReceiptICXClaim
		if err = types.Decode(item.Log, &log); err != nil {
			return nil, err
		}
		kv = append(kv, &types.KeyValue{Key: calcOfferHTLCKey(log.Claim.OfferTx, log.Claim.ID), Value: []byte(ty.HTLCKindClaimDFC)})
	}
	return kv, nil
}
