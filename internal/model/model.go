package model

// Transaction is a raw transaction as delivered by an Esplora-style
// block-explorer API (mempool.space). Value fields are satoshis.
type Transaction struct {
	TxID     string `json:"txid"`
	Version  int    `json:"version"`
	Locktime int    `json:"locktime"`
	Size     int    `json:"size"`
	Weight   int    `json:"weight"`
	Fee      int64  `json:"fee"`

	Vin  []Vin  `json:"vin"`
	Vout []Vout `json:"vout"`

	Status Status `json:"status"`
}

// Vin references a previous output. Prevout is nil when the upstream
// could not resolve it (coinbase, pruned data).
type Vin struct {
	TxID       string   `json:"txid"`
	Vout       int      `json:"vout"`
	IsCoinbase bool     `json:"is_coinbase"`
	ScriptSig  string   `json:"scriptsig"`
	Sequence   int64    `json:"sequence"`
	Witness    []string `json:"witness"`
	Prevout    *Prevout `json:"prevout"`
}

// Prevout is the resolved previous output referenced by an input.
// Address is empty when the script is unparseable.
type Prevout struct {
	ScriptPubKey     string `json:"scriptpubkey"`
	ScriptPubKeyType string `json:"scriptpubkey_type"`
	Address          string `json:"scriptpubkey_address"`
	Value            int64  `json:"value"`
}

type Vout struct {
	ScriptPubKey     string `json:"scriptpubkey"`
	ScriptPubKeyType string `json:"scriptpubkey_type"`
	Address          string `json:"scriptpubkey_address"`
	Value            int64  `json:"value"`
}

// Status carries confirmation state. BlockTime is 0 for unconfirmed
// transactions.
type Status struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHeight int64  `json:"block_height"`
	BlockHash   string `json:"block_hash"`
	BlockTime   int64  `json:"block_time"`
}

type AddressRequest struct {
	Address string `json:"address"`
}

type AddressReply struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}

type SummaryRequest struct {
	Address string `json:"address"`
}

type SummaryReply struct {
	Address       string `json:"address"`
	BalanceSat    int64  `json:"balance_sat"`
	Balance       string `json:"balance"` //BTC, 8 decimal places
	FiatValue     string `json:"fiat_value,omitempty"`
	FiatAvailable bool   `json:"fiat_available"`
	TxCount       int    `json:"tx_count"`
}

type LedgerRequest struct {
	Address  string `json:"address"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type LedgerEntry struct {
	TxID           string `json:"txid"`
	Direction      string `json:"direction"`
	Amount         int64  `json:"amount"` //absolute net amount, satoshis
	RunningBalance int64  `json:"running_balance"`
	Fee            int64  `json:"fee"`
	Confirmed      bool   `json:"confirmed"`
	BlockTime      int64  `json:"block_time,omitempty"`
	Starred        bool   `json:"starred"`
}

type LedgerReply struct {
	Address   string        `json:"address"`
	Entries   []LedgerEntry `json:"entries"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	PageCount int           `json:"page_count"`
	TotalSize int           `json:"total_size"`
}

type HoldingsRequest struct {
	Address string `json:"address"`
}

type HoldingsPoint struct {
	Timestamp  int64  `json:"timestamp"`
	BtcBalance string `json:"btc_balance"`
	UsdBalance string `json:"usd_balance,omitempty"`
}

type HoldingsReply struct {
	Address       string          `json:"address"`
	Points        []HoldingsPoint `json:"points"`
	FiatAvailable bool            `json:"fiat_available"`
}

type StarRequest struct {
	Address string `json:"address"`
	TxID    string `json:"txid"`
}

type StarredReply struct {
	Address string   `json:"address"`
	TxIDs   []string `json:"txids"`
}
