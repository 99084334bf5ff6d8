// Package store persists the two pieces of dashboard state: the watched
// address (plain string under one key) and the starred-transaction set
// (JSON-encoded string array under an address-scoped key). Writes are
// synchronous; a mutation is durable before the triggering request
// completes.
package store

import (
	"encoding/json"
	"fmt"
	"sort"

	tmdb "github.com/cosmos/cosmos-db"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"

	"github.com/wx-shi/btc-dashboard/internal/config"
)

const (
	watchedAddressKey = "w:address"
	starredKeyPrefix  = "star:"

	dbName = "dashboard"
)

type Store struct {
	db     tmdb.DB
	logger *zap.Logger
}

func NewStore(conf *config.StoreConfig, logger *zap.Logger) (*Store, error) {
	db, err := tmdb.NewDB(dbName, tmdb.BackendType(conf.Backend), conf.Dir)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WatchedAddress returns the persisted address, empty if none selected.
func (s *Store) WatchedAddress() (string, error) {
	val, err := s.db.Get([]byte(watchedAddressKey))
	if err != nil {
		return "", err
	}
	return string(val), nil
}

func (s *Store) SetWatchedAddress(address string) error {
	return s.db.SetSync([]byte(watchedAddressKey), []byte(address))
}

// Starred returns the starred txids for an address, sorted.
func (s *Store) Starred(address string) ([]string, error) {
	set, err := s.starredSet(address)
	if err != nil {
		return nil, err
	}
	txids := set.List()
	sort.Strings(txids)
	return txids, nil
}

// Star adds a txid to the address-scoped starred set.
func (s *Store) Star(address, txid string) error {
	set, err := s.starredSet(address)
	if err != nil {
		return err
	}
	set.Add(txid)
	return s.writeStarred(address, set)
}

// Unstar removes a txid; removing an absent txid is a no-op.
func (s *Store) Unstar(address, txid string) error {
	set, err := s.starredSet(address)
	if err != nil {
		return err
	}
	set.Remove(txid)
	if set.IsEmpty() {
		return s.db.DeleteSync(starredKey(address))
	}
	return s.writeStarred(address, set)
}

func (s *Store) starredSet(address string) (*strset.Set, error) {
	val, err := s.db.Get(starredKey(address))
	if err != nil {
		return nil, err
	}
	if len(val) == 0 {
		return strset.New(), nil
	}

	var txids []string
	if err := json.Unmarshal(val, &txids); err != nil {
		return nil, fmt.Errorf("invalid starred set for %s: %w", address, err)
	}
	return strset.New(txids...), nil
}

func (s *Store) writeStarred(address string, set *strset.Set) error {
	txids := set.List()
	sort.Strings(txids)
	data, err := json.Marshal(txids)
	if err != nil {
		return err
	}
	return s.db.SetSync(starredKey(address), data)
}

func starredKey(address string) []byte {
	return []byte(starredKeyPrefix + address)
}
