package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rocknwa/FundMe/internal/config"
	"github.com/rocknwa/FundMe/internal/events"
	"github.com/rocknwa/FundMe/internal/events/kafka"
	interfaces "github.com/rocknwa/FundMe/internal/interfaces"
	"github.com/rocknwa/FundMe/internal/ledger"
	"github.com/rocknwa/FundMe/internal/oracle"
	"github.com/rocknwa/FundMe/internal/storage/memory"
	"github.com/rocknwa/FundMe/internal/storage/postgres"
	"github.com/rocknwa/FundMe/internal/treasury"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	var store interfaces.FundStore = memory.NewMemoryFundStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("ping postgres")
		}
		store = postgres.NewPostgresFundStore(db)
	}

	var publisher interfaces.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers)
	}

	feed := oracle.NewMockFeed(cfg.FeedDecimals, cfg.FeedAnswer)
	fund := ledger.NewFundLedger(cfg.OwnerID, feed, store, treasury.LogTreasury{}, publisher)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/contributions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			ContributorID string          `json:"contributor_id"`
			RawAmount     decimal.Decimal `json:"raw_amount"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ContributorID == "" {
			http.Error(w, "contributor_id is a mandatory field", http.StatusBadRequest)
			return
		}

		contribution, err := fund.Contribute(r.Context(), req.ContributorID, req.RawAmount)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, oracle.ErrBadAnswer) {
				status = http.StatusBadGateway
			}
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(struct {
			ID       string          `json:"id"`
			RefValue decimal.Decimal `json:"ref_value"`
		}{
			ID:       contribution.ID,
			RefValue: contribution.RefValue,
		})
	})

	http.HandleFunc("/withdrawals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CallerID string `json:"caller_id"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		released, err := fund.Withdraw(r.Context(), req.CallerID)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrNotOwner):
				http.Error(w, err.Error(), http.StatusForbidden)
			case errors.Is(err, ledger.ErrTransferFailed):
				http.Error(w, err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Released decimal.Decimal `json:"released"`
		}{
			Released: released,
		})
	})

	http.HandleFunc("/contributions/total", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		contributorID := r.URL.Query().Get("contributor_id")
		if contributorID == "" {
			http.Error(w, "contributor_id is a mandatory field", http.StatusBadRequest)
			return
		}

		amount, err := fund.AmountContributed(contributorID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			ContributorID string          `json:"contributor_id"`
			Amount        decimal.Decimal `json:"amount"`
		}{
			ContributorID: contributorID,
			Amount:        amount,
		})
	})

	http.HandleFunc("/contributors", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			http.Error(w, "index is a mandatory integer field", http.StatusBadRequest)
			return
		}

		contributorID, err := fund.ContributorAt(index)
		if err != nil {
			if errors.Is(err, ledger.ErrIndexOutOfRange) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Index         int    `json:"index"`
			ContributorID string `json:"contributor_id"`
		}{
			Index:         index,
			ContributorID: contributorID,
		})
	})

	http.HandleFunc("/owner", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Owner string `json:"owner"`
		}{
			Owner: fund.Owner(),
		})
	})

	log.Info().Str("addr", cfg.Addr).Str("owner", cfg.OwnerID).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
