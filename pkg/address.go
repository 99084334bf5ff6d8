package pkg

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// CheckAddress is a local sanity check for a mainnet address before the
// remote validation API is consulted.
func CheckAddress(address string) bool {
	addr, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams)
	if err != nil {
		return false
	}
	return addr.IsForNet(&chaincfg.MainNetParams)
}
