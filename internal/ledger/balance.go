package ledger

import "github.com/wx-shi/btc-dashboard/internal/model"

// TotalBalance is the sum of net amounts over all transactions,
// independent of order. It equals the running balance of the last
// chronological entry produced by Build for the same inputs.
func TotalBalance(txs []*model.Transaction, address string) int64 {
	var total int64
	for _, tx := range txs {
		total += Classify(tx, address).NetAmount
	}
	return total
}

// ClampDisplay floors a balance at zero for presentation. The signed
// value itself is never clamped inside the accounting path.
func ClampDisplay(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
