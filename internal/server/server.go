package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wx-shi/btc-dashboard/internal/config"
	"github.com/wx-shi/btc-dashboard/internal/ledger"
	"github.com/wx-shi/btc-dashboard/internal/model"
	"github.com/wx-shi/btc-dashboard/internal/store"
	"github.com/wx-shi/btc-dashboard/pkg"
)

const (
	// readTimeout is the maximum duration for reading the entire
	// request, including the body.
	readTimeout = 5 * time.Minute

	// writeTimeout is the maximum duration before timing out
	// writes of the response. It is reset whenever a new
	// request's header is read.
	writeTimeout = 5 * time.Minute

	// idleTimeout is the maximum amount of time to wait for the
	// next request when keep-alives are enabled.
	idleTimeout = 5 * time.Minute
)

// Explorer is the block-explorer boundary the handlers consume.
type Explorer interface {
	AddressTxs(address string) ([]*model.Transaction, error)
	ValidateAddress(address string) (bool, error)
}

// Quoter supplies the latest fiat quote.
type Quoter interface {
	Quote() ledger.Quote
}

type Server struct {
	conf     *config.ServerConfig
	lconf    *config.LedgerConfig
	logger   *zap.Logger
	store    *store.Store
	explorer Explorer
	quotes   Quoter
	engine   *gin.Engine
	hs       *http.Server
}

func NewServer(conf *config.ServerConfig, lconf *config.LedgerConfig, logger *zap.Logger,
	store *store.Store, explorer Explorer, quotes Quoter) *Server {

	s := &Server{
		conf:     conf,
		lconf:    lconf,
		logger:   logger,
		store:    store,
		explorer: explorer,
		quotes:   quotes,
	}

	s.initGin()
	return s
}

func (s *Server) initGin() {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(pkg.LogMiddleware(s.logger), pkg.CORSMiddleware(), gin.Recovery())

	engine.POST("address", s.addressHandle())
	engine.POST("summary", s.summaryHandle())
	engine.POST("ledger", s.ledgerHandle())
	engine.POST("holdings", s.holdingsHandle())
	engine.POST("star", s.starHandle())
	engine.POST("unstar", s.unstarHandle())
	engine.POST("starred", s.starredHandle())
	s.engine = engine
}

func (s *Server) Run() {
	addr := fmt.Sprintf("%s:%d", s.conf.Host, s.conf.Port)
	hs := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	s.hs = hs

	go func() {
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("listen", zap.Error(err))
		}
	}()
	s.logger.Info("listen", zap.String("addr", addr))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}
