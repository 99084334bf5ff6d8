// Package price refreshes the BTC fiat quote from the coingecko
// simple-price API once per configured interval.
package price

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/guonaihong/gout"
	"github.com/wx-shi/btc-dashboard/internal/config"
	"github.com/wx-shi/btc-dashboard/internal/ledger"
	"go.uber.org/zap"
)

type Feed struct {
	conf   *config.PriceConfig
	logger *zap.Logger

	mu    sync.RWMutex
	quote ledger.Quote
}

func NewFeed(conf *config.PriceConfig, logger *zap.Logger) *Feed {
	return &Feed{
		conf:   conf,
		logger: logger,
		quote:  ledger.NoQuote(),
	}
}

// Quote returns the most recent quote; unavailable until the first
// successful refresh.
func (f *Feed) Quote() ledger.Quote {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.quote
}

// Start runs the refresh loop until the context is cancelled. The first
// refresh happens immediately.
func (f *Feed) Start(ctx context.Context) {
	go func() {
		f.Refresh()

		ticker := time.NewTicker(time.Duration(f.conf.RefreshInterval) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.Refresh()
			}
		}
	}()
}

// Refresh fetches the quote once, retrying transient failures. On failure
// the previous quote is kept; it never degrades to a zero price.
func (f *Feed) Refresh() {
	var price float64
	err := retry.Do(func() error {
		p, err := f.fetch()
		if err != nil {
			return err
		}
		price = p
		return nil
	}, retry.Attempts(3))
	if err != nil {
		f.logger.Error("Refresh", zap.Error(err))
		return
	}

	f.mu.Lock()
	f.quote = ledger.NewQuote(price)
	f.mu.Unlock()
	f.logger.Debug("Refresh", zap.Float64("price", price))
}

type priceReply struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

func (f *Feed) fetch() (float64, error) {
	var (
		reply priceReply
		code  int
	)
	if err := gout.GET(f.conf.URL).
		SetQuery(gout.H{"ids": "bitcoin", "vs_currencies": "usd"}).
		Code(&code).
		BindJSON(&reply).
		Do(); err != nil {
		return 0, fmt.Errorf("fetch price: %w", err)
	}
	if code != http.StatusOK {
		return 0, fmt.Errorf("fetch price: unexpected status %d", code)
	}
	if reply.Bitcoin.USD <= 0 {
		return 0, fmt.Errorf("fetch price: invalid price %f", reply.Bitcoin.USD)
	}
	return reply.Bitcoin.USD, nil
}
