// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/critterlab/critterd/version"
)

// setup command handler
//
// commands that run before the daemon starts; these cannot access
// any internal database or state
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version":
		fmt.Println(version.Version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--version] --config-file=FILE [command]\n", program)
		fmt.Println("supported commands:")
		fmt.Println("  help                   (h)      - display this message")
		fmt.Println("  version                         - display the program version")
		fmt.Println("  show-configuration              - display the parsed configuration")

	default:
		// not processed here
		return false
	}

	return true
}

// config command handler
//
// commands that need the parsed configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "show-configuration":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration marshal error: %s", err)
		}
		fmt.Println(string(b))

	default:
		// not processed here
		return false
	}

	return true
}
