// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/critterlab/critterd/blockheader"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/entropy"
	"github.com/critterlab/critterd/escrow"
	"github.com/critterlab/critterd/ledger"
	"github.com/critterlab/critterd/messagebus"
	"github.com/critterlab/critterd/mode"
	"github.com/critterlab/critterd/ownership"
	"github.com/critterlab/critterd/storage"
	"github.com/critterlab/critterd/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// block header data
	log.Info("initialise blockheader")
	err = blockheader.Initialise()
	if nil != err {
		log.Criticalf("blockheader initialise error: %s", err)
		exitwithstatus.Message("blockheader initialise error: %s", err)
	}
	defer blockheader.Finalise()

	// the currency and reservation ledger
	log.Info("initialise escrow")
	err = escrow.Initialise(storage.Pool.Balances, storage.Pool.Reserved)
	if nil != err {
		log.Criticalf("escrow initialise error: %s", err)
		exitwithstatus.Message("escrow initialise error: %s", err)
	}
	defer escrow.Finalise()

	// who owns what
	log.Info("initialise ownership")
	err = ownership.Initialise(
		storage.Pool.OwnerCount,
		storage.Pool.OwnerList,
		storage.Pool.OwnerIndex,
		theConfiguration.MaxCritterOwned,
	)
	if nil != err {
		log.Criticalf("ownership initialise error: %s", err)
		exitwithstatus.Message("ownership initialise error: %s", err)
	}
	defer ownership.Finalise()

	randomSource, err := entropy.NewSystem()
	if nil != err {
		log.Criticalf("entropy initialise error: %s", err)
		exitwithstatus.Message("entropy initialise error: %s", err)
	}

	// the critter operations
	log.Info("initialise ledger")
	err = ledger.Initialise(storage.Pool.Critters, storage.Pool.Counter, ledger.Config{
		ReservationFee: critterrecord.Amount(theConfiguration.ReservationFee),
		Entropy:        randomSource,
	})
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	defer ledger.Finalise()

	// a fresh database gets the genesis state
	if 0 == ledger.MintedCount() {
		log.Infof("seeding genesis state for chain: %s", mode.ChainName())
		err = ledger.SeedGenesis(mode.ChainName())
		if nil != err {
			log.Criticalf("genesis seed error: %s", err)
			exitwithstatus.Message("genesis seed error: %s", err)
		}
	}

	// drain and log ledger events
	go func() {
		eventLog := logger.New("events")
		for message := range messagebus.Chan() {
			eventLog.Infof("from: %s  event: %+v", message.From, message.Item)
		}
	}()

	// operations are accepted from now on
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("%s: internal server: %s  chain: %s\n", program, version.Version, mode.ChainName())
		fmt.Printf("%s: issue CTRL-C to stop\n", program)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("%s: received signal: %v\n", program, sig)
		fmt.Printf("%s: shutting down…\n", program)
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
