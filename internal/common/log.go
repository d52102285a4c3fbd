// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package common holds the ambient concerns shared by every package in this
// module: a package-level logger and the sentinel error taxonomy.
package common

import (
	log "github.com/ipfs/go-log"
)

// Logger is the package-wide logger for the crypto-primitives module. It is
// deliberately used sparingly: proof verification failures are never logged
// by the library itself, only returned as a structured result, so that the
// caller decides what, if anything, to do with a failed verification.
var Logger = log.Logger("crypto-primitives")

// SetLogLevel adjusts the verbosity of Logger at runtime, e.g. "debug", "info".
func SetLogLevel(level string) error {
	return log.SetLogLevel("crypto-primitives", level)
}
