package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	interfaces "github.com/rocknwa/FundMe/internal/interfaces"
	"github.com/rocknwa/FundMe/internal/models"
)

// PostgresFundStore persists the fund bookkeeping in two tables:
// contributor_totals (unique key per contributor, cumulative raw amount) and
// contribution_sequence (append-only, one row per accepted contribution).
type PostgresFundStore struct {
	db *sql.DB
}

func NewPostgresFundStore(db *sql.DB) *PostgresFundStore {
	return &PostgresFundStore{
		db: db,
	}
}

func (p *PostgresFundStore) AddContribution(ctx context.Context, contributorID string, rawAmount decimal.Decimal) error {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const upsert = `INSERT INTO contributor_totals (contributor_id, amount)
	VALUES ($1, $2)
	ON CONFLICT (contributor_id) DO UPDATE SET amount = contributor_totals.amount + EXCLUDED.amount`

	_, err = dbTx.ExecContext(ctx, upsert, contributorID, rawAmount)
	if err != nil {
		return err
	}

	const appendSeq = `INSERT INTO contribution_sequence (contributor_id) VALUES ($1)`

	_, err = dbTx.ExecContext(ctx, appendSeq, contributorID)
	if err != nil {
		return err
	}

	return dbTx.Commit()
}

func (p *PostgresFundStore) AmountContributed(contributorID string) (decimal.Decimal, error) {
	const query = `SELECT amount FROM contributor_totals WHERE contributor_id = $1`

	var amount decimal.Decimal
	err := p.db.QueryRow(query, contributorID).Scan(&amount)

	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

func (p *PostgresFundStore) Contributors() ([]string, error) {
	const query = `SELECT contributor_id FROM contribution_sequence ORDER BY position`

	rows, err := p.db.Query(query)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var contributors []string

	for rows.Next() {
		var contributorID string
		if err := rows.Scan(&contributorID); err != nil {
			return nil, err
		}
		contributors = append(contributors, contributorID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contributors, nil
}

func (p *PostgresFundStore) TotalBalance() (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM contributor_totals`

	var balance decimal.Decimal
	if err := p.db.QueryRow(query).Scan(&balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Reset reads the current state and deletes it inside one db transaction, so
// the clear is atomic with respect to concurrent contributions.
func (p *PostgresFundStore) Reset(ctx context.Context) (models.LedgerSnapshot, error) {
	snap := models.LedgerSnapshot{
		Records: make(map[string]decimal.Decimal),
		Balance: decimal.Zero,
	}

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return snap, err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	rows, err := dbTx.QueryContext(ctx, `SELECT contributor_id, amount FROM contributor_totals`)
	if err != nil {
		return snap, err
	}

	for rows.Next() {
		var contributorID string
		var amount decimal.Decimal
		if err = rows.Scan(&contributorID, &amount); err != nil {
			rows.Close()
			return snap, err
		}
		snap.Records[contributorID] = amount
		snap.Balance = snap.Balance.Add(amount)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return snap, err
	}
	rows.Close()

	rows, err = dbTx.QueryContext(ctx, `SELECT contributor_id FROM contribution_sequence ORDER BY position`)
	if err != nil {
		return snap, err
	}

	for rows.Next() {
		var contributorID string
		if err = rows.Scan(&contributorID); err != nil {
			rows.Close()
			return snap, err
		}
		snap.Sequence = append(snap.Sequence, contributorID)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return snap, err
	}
	rows.Close()

	if _, err = dbTx.ExecContext(ctx, `DELETE FROM contribution_sequence`); err != nil {
		return snap, err
	}
	if _, err = dbTx.ExecContext(ctx, `DELETE FROM contributor_totals`); err != nil {
		return snap, err
	}

	err = dbTx.Commit()
	return snap, err
}

func (p *PostgresFundStore) Restore(ctx context.Context, snap models.LedgerSnapshot) error {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	for contributorID, amount := range snap.Records {
		_, err = dbTx.ExecContext(ctx,
			`INSERT INTO contributor_totals (contributor_id, amount) VALUES ($1, $2)`,
			contributorID, amount)
		if err != nil {
			return err
		}
	}

	for _, contributorID := range snap.Sequence {
		_, err = dbTx.ExecContext(ctx,
			`INSERT INTO contribution_sequence (contributor_id) VALUES ($1)`,
			contributorID)
		if err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

var _ interfaces.FundStore = (*PostgresFundStore)(nil)
