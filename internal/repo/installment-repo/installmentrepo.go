package installmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const installmentColumns = `id, loan_id, due_date, expected_amount, paid_amount, status`

func scanInstallment(row pgx.Row) (*domain.Installment, error) {
	var inst domain.Installment
	err := row.Scan(&inst.ID, &inst.LoanID, &inst.DueDate, &inst.ExpectedAmount, &inst.PaidAmount, &inst.Status)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// SaveAll inserts a full schedule for a loan in one transaction.
func (r *Repository) SaveAll(ctx context.Context, loanID int, installments []domain.Installment) error {
	query := `
        INSERT INTO installments (loan_id, due_date, expected_amount, paid_amount, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, inst := range installments {
			_, err := r.db.Exec(ctx, query, loanID, inst.DueDate, inst.ExpectedAmount, inst.PaidAmount, inst.Status)
			if err != nil {
				zap.L().Error("can't save installment", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetByID(ctx context.Context, installmentID int) (*domain.Installment, error) {
	query := `
        SELECT ` + installmentColumns + `
        FROM installments
        WHERE id = $1
    `
	inst, err := scanInstallment(r.db.QueryRow(ctx, query, installmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get installment", zap.Error(err))
		return nil, err
	}
	return inst, nil
}

// GetByIDForUpdate locks the installment row so concurrent confirmations of
// different payments on the same installment serialize on paid_amount.
// Must be called inside TXManager.Begin.
func (r *Repository) GetByIDForUpdate(ctx context.Context, installmentID int) (*domain.Installment, error) {
	query := `
        SELECT ` + installmentColumns + `
        FROM installments
        WHERE id = $1
        FOR UPDATE
    `
	inst, err := scanInstallment(r.db.QueryRow(ctx, query, installmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock installment", zap.Error(err))
		return nil, err
	}
	return inst, nil
}

func (r *Repository) FindByLoanID(ctx context.Context, loanID int) ([]domain.Installment, error) {
	query := `
        SELECT ` + installmentColumns + `
        FROM installments
        WHERE loan_id = $1
        ORDER BY due_date ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, loanID)
	if err != nil {
		zap.L().Error("can't get installments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			zap.L().Error("can't scan installment row", zap.Error(err))
			return nil, err
		}
		installments = append(installments, *inst)
	}
	return installments, nil
}

// SetPaid writes a recomputed paid amount and status for an installment.
func (r *Repository) SetPaid(ctx context.Context, installmentID int, paid decimal.Decimal, status string) (*domain.Installment, error) {
	query := `
        UPDATE installments
        SET paid_amount = $1, status = $2
        WHERE id = $3
        RETURNING ` + installmentColumns + `
    `
	var updated *domain.Installment
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanInstallment(r.db.QueryRow(ctx, query, paid, status, installmentID))
		if err != nil {
			zap.L().Error("can't update installment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ForceAllPaid closes every unpaid installment of a loan at its expected
// amount. Used by renewal close-out only, never by payment confirmation.
func (r *Repository) ForceAllPaid(ctx context.Context, loanID int) error {
	query := `
        UPDATE installments
        SET paid_amount = expected_amount, status = 'paid'
        WHERE loan_id = $1 AND status <> 'paid'
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, loanID); err != nil {
			zap.L().Error("can't force installments paid", zap.Error(err))
			return err
		}
		return nil
	})
}

// PaidSummary aggregates a loan's collection progress: total paid across all
// installments and the count not yet fully paid.
func (r *Repository) PaidSummary(ctx context.Context, loanID int) (decimal.Decimal, int, error) {
	query := `
        SELECT COALESCE(SUM(paid_amount), 0), COUNT(*) FILTER (WHERE status <> 'paid')
        FROM installments
        WHERE loan_id = $1
    `
	var totalPaid decimal.Decimal
	var unpaid int
	err := r.db.QueryRow(ctx, query, loanID).Scan(&totalPaid, &unpaid)
	if err != nil {
		zap.L().Error("can't get paid summary", zap.Error(err))
		return decimal.Zero, 0, err
	}
	return totalPaid, unpaid, nil
}
