// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package init registers every dapp plugin
package init

import (
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook" // register icxorderbook
)
