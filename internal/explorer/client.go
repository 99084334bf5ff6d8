// Package explorer is the client for an Esplora-style block-explorer API
// (mempool.space). Fetches are single-shot: a failure is terminal for the
// requesting view, retry policy belongs to callers that want one.
package explorer

import (
	"fmt"
	"net/http"

	"github.com/guonaihong/gout"
	"github.com/wx-shi/btc-dashboard/internal/config"
	"github.com/wx-shi/btc-dashboard/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type Client struct {
	url    string
	rl     ratelimit.Limiter
	logger *zap.Logger
}

func NewClient(conf *config.ExplorerConfig, logger *zap.Logger) *Client {
	return &Client{
		url:    conf.URL,
		rl:     ratelimit.New(conf.RPS),
		logger: logger,
	}
}

// AddressTxs fetches the transaction history for an address. An empty
// history is a normal empty slice, not an error.
func (c *Client) AddressTxs(address string) ([]*model.Transaction, error) {
	c.rl.Take()

	var (
		txs  []*model.Transaction
		code int
	)
	if err := gout.GET(fmt.Sprintf("%s/api/address/%s/txs", c.url, address)).
		Code(&code).
		BindJSON(&txs).
		Do(); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("fetch transactions: unexpected status %d", code)
	}

	c.logger.Debug("AddressTxs",
		zap.String("address", address),
		zap.Int("tx_len", len(txs)))
	return txs, nil
}

type validateReply struct {
	IsValid bool `json:"isvalid"`
}

// ValidateAddress asks the explorer whether an address is valid. A failed
// request means validity cannot be confirmed and is returned as an error,
// not as "invalid".
func (c *Client) ValidateAddress(address string) (bool, error) {
	c.rl.Take()

	var (
		reply validateReply
		code  int
	)
	if err := gout.GET(fmt.Sprintf("%s/api/v1/validate-address/%s", c.url, address)).
		Code(&code).
		BindJSON(&reply).
		Do(); err != nil {
		return false, fmt.Errorf("validate address: %w", err)
	}
	if code != http.StatusOK {
		return false, fmt.Errorf("validate address: unexpected status %d", code)
	}

	return reply.IsValid, nil
}
