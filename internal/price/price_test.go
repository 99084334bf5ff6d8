package price

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wx-shi/btc-dashboard/internal/config"
)

func newTestFeed(t *testing.T, handler http.Handler) *Feed {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewFeed(&config.PriceConfig{URL: ts.URL, RefreshInterval: 60}, zap.NewNop())
}

func TestRefresh(t *testing.T) {
	f := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"bitcoin": {"usd": 50000.0}}`)
	}))

	assert.False(t, f.Quote().Available())

	f.Refresh()
	q := f.Quote()
	require.True(t, q.Available())
	assert.True(t, q.Price().Equal(decimal.NewFromInt(50000)))
}

func TestRefresh_FailureKeepsQuoteUnavailable(t *testing.T) {
	f := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{}`)
	}))

	f.Refresh()
	assert.False(t, f.Quote().Available())
}

func TestRefresh_FailureKeepsLastQuote(t *testing.T) {
	fail := false
	f := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprint(w, `{"bitcoin": {"usd": 42000.0}}`)
	}))

	f.Refresh()
	require.True(t, f.Quote().Available())

	fail = true
	f.Refresh()
	q := f.Quote()
	require.True(t, q.Available())
	assert.True(t, q.Price().Equal(decimal.NewFromInt(42000)))
}

func TestRefresh_RejectsNonPositivePrice(t *testing.T) {
	f := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bitcoin": {"usd": 0}}`)
	}))

	f.Refresh()
	assert.False(t, f.Quote().Available())
}
