package explorer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wx-shi/btc-dashboard/internal/config"
)

const txsFixture = `[
  {
    "txid": "b",
    "fee": 1000,
    "vin": [
      {"txid": "a", "vout": 0, "prevout": {"scriptpubkey_address": "addr1", "value": 50000}}
    ],
    "vout": [
      {"scriptpubkey_address": "addr2", "value": 49000}
    ],
    "status": {"confirmed": true, "block_height": 2, "block_time": 200}
  },
  {
    "txid": "a",
    "fee": 500,
    "vin": [
      {"txid": "0", "vout": 0, "is_coinbase": false}
    ],
    "vout": [
      {"scriptpubkey_address": "addr1", "value": 50000},
      {"scriptpubkey": "6a24aa21a9ed", "scriptpubkey_type": "op_return", "value": 0}
    ],
    "status": {"confirmed": false}
  }
]`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(&config.ExplorerConfig{URL: ts.URL, RPS: 100}, zap.NewNop())
}

func TestAddressTxs(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/address/addr1/txs", r.URL.Path)
		fmt.Fprint(w, txsFixture)
	}))

	txs, err := c.AddressTxs("addr1")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "b", txs[0].TxID)
	assert.Equal(t, int64(1000), txs[0].Fee)
	require.Len(t, txs[0].Vin, 1)
	require.NotNil(t, txs[0].Vin[0].Prevout)
	assert.Equal(t, "addr1", txs[0].Vin[0].Prevout.Address)
	assert.Equal(t, int64(50000), txs[0].Vin[0].Prevout.Value)
	assert.True(t, txs[0].Status.Confirmed)
	assert.Equal(t, int64(200), txs[0].Status.BlockTime)

	// Unresolved prevout and unparseable output degrade, not fail.
	assert.Nil(t, txs[1].Vin[0].Prevout)
	assert.Empty(t, txs[1].Vout[1].Address)
	assert.False(t, txs[1].Status.Confirmed)
	assert.Zero(t, txs[1].Status.BlockTime)
}

func TestAddressTxs_Empty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	txs, err := c.AddressTxs("addrempty")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestAddressTxs_UpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `[]`)
	}))

	_, err := c.AddressTxs("addr1")
	assert.Error(t, err)
}

func TestValidateAddress(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/validate-address/addr1", r.URL.Path)
		fmt.Fprint(w, `{"isvalid": true}`)
	}))

	valid, err := c.ValidateAddress("addr1")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestValidateAddress_Invalid(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"isvalid": false}`)
	}))

	valid, err := c.ValidateAddress("junk")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateAddress_UpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{}`)
	}))

	_, err := c.ValidateAddress("addr1")
	assert.Error(t, err)
}
