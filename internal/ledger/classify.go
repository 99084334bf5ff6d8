package ledger

import "github.com/wx-shi/btc-dashboard/internal/model"

type Direction string

const (
	DirectionReceived Direction = "received"
	DirectionSent     Direction = "sent"
)

// Flow is the net effect of a single transaction on one address.
type Flow struct {
	NetAmount int64
	Direction Direction
}

// Classify sums the outputs paying the address and subtracts the resolved
// inputs spending from it. Inputs without a resolved prevout and outputs
// without a parseable address contribute nothing. A zero net amount
// classifies as sent.
func Classify(tx *model.Transaction, address string) Flow {
	var net int64
	for _, out := range tx.Vout {
		if out.Address != "" && out.Address == address {
			net += out.Value
		}
	}
	for _, in := range tx.Vin {
		if in.Prevout == nil {
			continue
		}
		if in.Prevout.Address != "" && in.Prevout.Address == address {
			net -= in.Prevout.Value
		}
	}

	direction := DirectionSent
	if net > 0 {
		direction = DirectionReceived
	}
	return Flow{NetAmount: net, Direction: direction}
}
