// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/critterlab/critterd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			From: "q1",
			Item: "i1",
		},
		{
			From: "q2",
			Item: "i2",
		},
		{
			From: "q3",
			Item: "i3",
		},
	}

	for _, item := range items {
		messagebus.Send(item.From, item.Item)
	}

	queue := messagebus.Chan()
	for _, item := range items {
		received := <-queue
		if received.From != item.From {
			t.Errorf("actual: %q  expected: %q", received.From, item.From)
		}
		if received.Item != item.Item {
			t.Errorf("actual: %v  expected: %v", received.Item, item.Item)
		}
	}
}
