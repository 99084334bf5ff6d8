package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scylladb/go-set/strset"
	"golang.org/x/sync/errgroup"

	"github.com/wx-shi/btc-dashboard/internal/ledger"
	"github.com/wx-shi/btc-dashboard/internal/model"
	"github.com/wx-shi/btc-dashboard/pkg"
)

// resolveAddress falls back to the persisted watched address when the
// request does not carry one.
func (s *Server) resolveAddress(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	return s.store.WatchedAddress()
}

func (s *Server) addressHandle() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.AddressRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !pkg.CheckAddress(req.Address) {
			ctx.JSON(http.StatusOK, gin.H{
				"code": http.StatusOK,
				"data": model.AddressReply{Address: req.Address, Valid: false},
			})
			return
		}

		valid, err := s.explorer.ValidateAddress(req.Address)
		if err != nil {
			// Cannot confirm validity; the address is rejected for
			// submission but not reported as invalid.
			ctx.JSON(http.StatusBadGateway, gin.H{
				"code": http.StatusBadGateway,
				"msg":  "unable to confirm address validity",
			})
			return
		}
		if !valid {
			ctx.JSON(http.StatusOK, gin.H{
				"code": http.StatusOK,
				"data": model.AddressReply{Address: req.Address, Valid: false},
			})
			return
		}

		if err := s.store.SetWatchedAddress(req.Address); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": model.AddressReply{Address: req.Address, Valid: true},
		})
	}
}

func (s *Server) summaryHandle() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.SummaryRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := s.resolveAddress(req.Address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}
		if address == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "no address selected",
			})
			return
		}

		txs, err := s.explorer.AddressTxs(address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		display := ledger.ClampDisplay(ledger.TotalBalance(txs, address))
		reply := model.SummaryReply{
			Address:    address,
			BalanceSat: display,
			Balance:    ledger.ToUnit(display, ledger.SatoshiPerBTC).StringFixed(8),
			TxCount:    len(txs),
		}

		// Price absence degrades gracefully: balance still renders,
		// fiat is omitted rather than shown as zero.
		if fiat, ok := ledger.ToFiat(display, ledger.SatoshiPerBTC, s.quotes.Quote()); ok {
			reply.FiatValue = fiat.StringFixed(2)
			reply.FiatAvailable = true
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": reply,
		})
	}
}

func (s *Server) ledgerHandle() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.LedgerRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := s.resolveAddress(req.Address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}
		if address == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "no address selected",
			})
			return
		}

		order, ok := ledger.ParseSortOrder(req.Sort)
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "invalid sort order",
			})
			return
		}

		page := req.Page
		if page < 1 {
			page = 1
		}
		pageSize := req.PageSize
		if pageSize <= 0 {
			pageSize = s.lconf.PageSize
		}

		var (
			txs     []*model.Transaction
			starred []string
		)
		g := errgroup.Group{}
		g.Go(func() error {
			var err error
			txs, err = s.explorer.AddressTxs(address)
			return err
		})
		g.Go(func() error {
			var err error
			starred, err = s.store.Starred(address)
			return err
		})
		if err := g.Wait(); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		entries := ledger.Build(txs, address, order)
		pageEntries := pkg.Paginate(entries, page, pageSize)
		starSet := strset.New(starred...)

		les := make([]model.LedgerEntry, 0, len(pageEntries))
		for _, e := range pageEntries {
			les = append(les, model.LedgerEntry{
				TxID:           e.Tx.TxID,
				Direction:      string(e.Direction),
				Amount:         e.DisplayAmount(),
				RunningBalance: ledger.ClampDisplay(e.RunningBalance),
				Fee:            e.Tx.Fee,
				Confirmed:      e.Tx.Status.Confirmed,
				BlockTime:      e.Tx.Status.BlockTime,
				Starred:        starSet.Has(e.Tx.TxID),
			})
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": model.LedgerReply{
				Address:   address,
				Entries:   les,
				Page:      page,
				PageSize:  pageSize,
				PageCount: pkg.PageCount(entries, pageSize),
				TotalSize: len(entries),
			},
		})
	}
}

func (s *Server) holdingsHandle() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.HoldingsRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := s.resolveAddress(req.Address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}
		if address == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "no address selected",
			})
			return
		}

		txs, err := s.explorer.AddressTxs(address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		// The chart plots confirmed history only.
		confirmed := make([]*model.Transaction, 0, len(txs))
		for _, tx := range txs {
			if tx.Status.Confirmed && tx.Status.BlockTime > 0 {
				confirmed = append(confirmed, tx)
			}
		}

		entries := ledger.Build(confirmed, address, ledger.SortOldest)
		quote := s.quotes.Quote()

		points := make([]model.HoldingsPoint, 0, len(entries))
		for _, e := range entries {
			balance := ledger.ClampDisplay(e.RunningBalance)
			point := model.HoldingsPoint{
				Timestamp:  e.Tx.Status.BlockTime,
				BtcBalance: ledger.ToUnit(balance, ledger.SatoshiPerBTC).StringFixed(8),
			}
			if fiat, ok := ledger.ToFiat(balance, ledger.SatoshiPerBTC, quote); ok {
				point.UsdBalance = fiat.StringFixed(2)
			}
			points = append(points, point)
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": model.HoldingsReply{
				Address:       address,
				Points:        points,
				FiatAvailable: quote.Available(),
			},
		})
	}
}

func (s *Server) starHandle() func(ctx *gin.Context) {
	return s.starToggleHandle(func(address, txid string) error {
		return s.store.Star(address, txid)
	})
}

func (s *Server) unstarHandle() func(ctx *gin.Context) {
	return s.starToggleHandle(func(address, txid string) error {
		return s.store.Unstar(address, txid)
	})
}

func (s *Server) starToggleHandle(mutate func(address, txid string) error) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.StarRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Address == "" || req.TxID == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "address and txid required",
			})
			return
		}

		if err := mutate(req.Address, req.TxID); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		txids, err := s.store.Starred(req.Address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": model.StarredReply{Address: req.Address, TxIDs: txids},
		})
	}
}

func (s *Server) starredHandle() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req model.AddressRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := s.resolveAddress(req.Address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}
		if address == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code": http.StatusBadRequest,
				"msg":  "no address selected",
			})
			return
		}

		txids, err := s.store.Starred(address)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"code": http.StatusInternalServerError,
				"msg":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"data": model.StarredReply{Address: address, TxIDs: txids},
		})
	}
}
