// Package ledger derives running-balance views for a watched address from
// raw block-explorer transactions. All functions are pure; amounts are
// satoshis (int64) throughout, fiat conversion happens at the boundary.
package ledger

import (
	"sort"

	"github.com/wx-shi/btc-dashboard/internal/model"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder maps a request string to a SortOrder, defaulting to newest.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortNewest, SortOldest:
		return SortOrder(s), true
	case "":
		return SortNewest, true
	}
	return "", false
}

// Entry is one classified transaction with its running balance. The
// running balance is always chronological regardless of display order.
type Entry struct {
	Tx             *model.Transaction
	NetAmount      int64
	Direction      Direction
	RunningBalance int64
}

// DisplayAmount is the absolute net amount.
func (e Entry) DisplayAmount() int64 {
	if e.NetAmount < 0 {
		return -e.NetAmount
	}
	return e.NetAmount
}

// Build classifies every transaction, orders them by ascending confirmation
// time (unconfirmed sorts first, block time 0), accumulates the running
// balance over that chronological order, then reverses for newest-first
// display. Running balances stay attached to their entries across the
// reversal; they are never recomputed against the display order.
// Ties in block time keep input order.
func Build(txs []*model.Transaction, address string, order SortOrder) []Entry {
	entries := make([]Entry, 0, len(txs))
	for _, tx := range txs {
		flow := Classify(tx, address)
		entries = append(entries, Entry{
			Tx:        tx,
			NetAmount: flow.NetAmount,
			Direction: flow.Direction,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Tx.Status.BlockTime < entries[j].Tx.Status.BlockTime
	})

	var balance int64
	for i := range entries {
		balance += entries[i].NetAmount
		entries[i].RunningBalance = balance
	}

	if order == SortNewest {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries
}
