// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin import it to link in all plugins
package plugin

import (
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/init" // dapps
)
