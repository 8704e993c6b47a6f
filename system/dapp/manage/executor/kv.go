// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
)

// ManagePrefix 治理参数前缀key
var managePrefix = "mavl-manage"

//ManageKey 治理参数key
func manageKey(key string) []byte {
	return []byte(fmt.Sprintf("%s-%s", managePrefix, key))
}
