// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// icxd order book node
package main

import (
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin"
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/system"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/util/cli"
)

func main() {
	cli.RunNode("icxd")
}
