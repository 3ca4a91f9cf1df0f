package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const paymentColumns = `id, installment_id, borrower_id, amount, confirmed, confirmed_by, receipt_ref, comment, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.InstallmentID, &p.BorrowerID, &p.Amount, &p.Confirmed, &p.ConfirmedBy, &p.ReceiptRef, &p.Comment, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (installment_id, borrower_id, amount, confirmed, confirmed_by, receipt_ref, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + paymentColumns + `
    `
	var saved *domain.Payment
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, payment.InstallmentID, payment.BorrowerID, payment.Amount,
			payment.Confirmed, payment.ConfirmedBy, payment.ReceiptRef, payment.Comment)
		var err error
		saved, err = scanPayment(row)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *Repository) GetByID(ctx context.Context, paymentID int) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// GetByIDForUpdate locks the payment row. Must be called inside
// TXManager.Begin.
func (r *Repository) GetByIDForUpdate(ctx context.Context, paymentID int) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
        FOR UPDATE
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByInstallmentID(ctx context.Context, installmentID int) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE installment_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, installmentID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func (r *Repository) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        UPDATE payments
        SET amount = $1, confirmed = $2, confirmed_by = $3, receipt_ref = $4, comment = $5
        WHERE id = $6
        RETURNING ` + paymentColumns + `
    `
	var updated *domain.Payment
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, payment.Amount, payment.Confirmed, payment.ConfirmedBy,
			payment.ReceiptRef, payment.Comment, payment.ID)
		var err error
		updated, err = scanPayment(row)
		if err != nil {
			zap.L().Error("can't update payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, paymentID int) error {
	query := `
        DELETE FROM payments
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, paymentID); err != nil {
			zap.L().Error("can't delete payment", zap.Error(err))
			return err
		}
		return nil
	})
}
