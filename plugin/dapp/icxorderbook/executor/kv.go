// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
)

const (
	orderPrefix       = "mavl-icxorderbook-order-"
	offerPrefix       = "mavl-icxorderbook-offer-"
	dfchtlcPrefix     = "mavl-icxorderbook-dfchtlc-"
	exthtlcPrefix     = "mavl-icxorderbook-exthtlc-"
	claimPrefix       = "mavl-icxorderbook-claim-"
	orderOffersPrefix = "mavl-icxorderbook-orderoffers-"
	offerHTLCsPrefix  = "mavl-icxorderbook-offerhtlcs-"
	expirePrefix      = "mavl-icxorderbook-expire-"

	localOrderStatus = "LODB-icxorderbook-order-status-"
	localOfferStatus = "LODB-icxorderbook-offer-status-"
	localOrderOffer  = "LODB-icxorderbook-orderoffer-"
	localOfferHTLC   = "LODB-icxorderbook-offerhtlc-"
)

func calcOrderKey(id string) []byte {
	return []byte(orderPrefix + id)
}

func calcOfferKey(id string) []byte {
	return []byte(offerPrefix + id)
}

func calcDFCHTLCKey(id string) []byte {
	return []byte(dfchtlcPrefix + id)
}

func calcExtHTLCKey(id string) []byte {
	return []byte(exthtlcPrefix + id)
}

func calcClaimKey(id string) []byte {
	return []byte(claimPrefix + id)
}

func calcOrderOffersKey(orderTx string) []byte {
	return []byte(orderOffersPrefix + orderTx)
}

func calcOfferHTLCsKey(offerTx string) []byte {
	return []byte(offerHTLCsPrefix + offerTx)
}

func calcExpireKey(height int64) []byte {
	return []byte(fmt.Sprintf("%s%012d", expirePrefix, height))
}

func calcOrderStatusPrefix(status ty.Status) []byte {
	return []byte(fmt.Sprintf("%s%d-", localOrderStatus, status))
}

func calcOrderStatusKey(status ty.Status, id string) []byte {
	return []byte(fmt.Sprintf("%s%d-%s", localOrderStatus, status, id))
}

func calcOfferStatusKey(status ty.Status, id string) []byte {
	return []byte(fmt.Sprintf("%s%d-%s", localOfferStatus, status, id))
}

func calcOrderOfferPrefix(orderTx string) []byte {
	return []byte(localOrderOffer + orderTx + "-")
}

func calcOrderOfferKey(orderTx, offerTx string) []byte {
	return []byte(localOrderOffer + orderTx + "-" + offerTx)
}

func calcOfferHTLCPrefix(offerTx string) []byte {
	return []byte(localOfferHTLC + offerTx + "-")
}

func calcOfferHTLCKey(offerTx, htlcTx string) []byte {
	return []byte(localOfferHTLC + offerTx + "-" + htlcTx)
}
