// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"strings"
)

// whitelist remote ips allowed to call, "*" allows everyone. Empty means
// loopback only.
type whitelist struct {
	all  bool
	ips  map[string]bool
	nets []*net.IPNet
}

func newWhitelist(items []string) *whitelist {
	w := &whitelist{ips: make(map[string]bool)}
	if len(items) == 0 {
		items = []string{"127.0.0.1", "::1"}
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		switch {
		case item == "*" || item == "0.0.0.0":
			w.all = true
		case strings.Contains(item, "/"):
			_, ipnet, err := net.ParseCIDR(item)
			if err != nil {
				rlog.Error("whitelist", "bad cidr", item, "err", err)
				continue
			}
			w.nets = append(w.nets, ipnet)
		default:
			if ip := net.ParseIP(item); ip != nil {
				w.ips[ip.String()] = true
			} else {
				rlog.Error("whitelist", "bad ip", item)
			}
		}
	}
	return w
}

func (w *whitelist) allowed(remoteAddr string) bool {
	if w.all {
		return true
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	if w.ips[ip.String()] {
		return true
	}
	for _, n := range w.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
