// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// sweep expire everything scheduled for the current height. Entries that
// already reached a terminal status are skipped.
func (a *icxDB) sweep() (*types.Receipt, error) {
	key := calcExpireKey(a.height)
	var bucket ty.ExpiryBucket
	if err := a.get(key, &bucket, types.ErrNotFound); err != nil {
		return nil, nil
	}
	for _, e := range bucket.Entries {
		var err error
		switch e.Kind {
		case ty.ExpireOrder:
			err = a.expireOrder(e.ID)
		case ty.ExpireOffer:
			err = a.expireOffer(e.ID)
		case ty.ExpireDFCHTLC:
			err = a.expireDFCHTLC(e.ID)
		default:
			xlog.Error("sweep unknown entry", "kind", e.Kind, "id", e.ID)
		}
		if err != nil {
			xlog.Error("sweep", "height", a.height, "kind", e.Kind, "id", e.ID, "err", err)
			return nil, err
		}
	}
	a.set(key, nil)
	return a.receipt, nil
}

func (a *icxDB) expireOrder(id string) error {
	order, err := a.getOrder(id)
	if err != nil {
		return err
	}
	if order.Status != ty.StatusOpen {
		return nil
	}
	expired.Inc(1)
	return a.finishOrder(order, ty.StatusExpired)
}

func (a *icxDB) expireOffer(id string) error {
	offer, err := a.getOffer(id)
	if err != nil {
		return err
	}
	// an offer with a DFC HTLC lives until the htlc resolves
	if offer.Status != ty.StatusOpen || a.getOfferHTLCs(id).DFC != "" {
		return nil
	}
	order, err := a.getOrder(offer.OrderTx)
	if err != nil {
		return err
	}
	if err = a.finishOffer(order, offer, ty.StatusExpired); err != nil {
		return err
	}
	a.saveOrder(order, order.Status)
	expired.Inc(1)
	return nil
}

func (a *icxDB) expireDFCHTLC(id string) error {
	dfc, err := a.getDFCHTLC(id)
	if err != nil {
		return err
	}
	if dfc.Status != ty.HTLCOpen {
		return nil
	}
	return a.refundDFCHTLC(dfc)
}
