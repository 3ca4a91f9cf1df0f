package loanrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/pg"
)

var ErrLoanAlreadySettled = errors.New("loan already settled")

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

const loanColumns = `id, borrower_id, monto_principal, porcentaje_interes, total_a_devolver, plazo_dias, monto_diario, fecha_otorgado, fecha_inicio_cobro, status`

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var loan domain.Loan
	err := row.Scan(&loan.ID, &loan.BorrowerID, &loan.Principal, &loan.InterestPercent, &loan.TotalToReturn,
		&loan.TermDays, &loan.DailyAmount, &loan.GrantedAt, &loan.CollectsFrom, &loan.Status)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *Repository) Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	query := `
        INSERT INTO loans (borrower_id, monto_principal, porcentaje_interes, total_a_devolver, plazo_dias, monto_diario, fecha_otorgado, fecha_inicio_cobro, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + loanColumns + `
    `
	var saved *domain.Loan
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, loan.BorrowerID, loan.Principal, loan.InterestPercent, loan.TotalToReturn,
			loan.TermDays, loan.DailyAmount, loan.GrantedAt, loan.CollectsFrom, loan.Status)
		var err error
		saved, err = scanLoan(row)
		if err != nil {
			zap.L().Error("can't save loan", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *Repository) GetByID(ctx context.Context, loanID int) (*domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1
    `
	loan, err := scanLoan(r.db.QueryRow(ctx, query, loanID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// GetByIDForUpdate locks the loan row for the duration of the surrounding
// transaction. Must be called inside TXManager.Begin.
func (r *Repository) GetByIDForUpdate(ctx context.Context, loanID int) (*domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1
        FOR UPDATE
    `
	loan, err := scanLoan(r.db.QueryRow(ctx, query, loanID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) FindByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE borrower_id = $1
        ORDER BY fecha_otorgado DESC, id DESC
    `
	return r.findLoans(ctx, query, borrowerID)
}

func (r *Repository) FindActiveByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE borrower_id = $1 AND status = 'active'
        ORDER BY fecha_otorgado ASC, id ASC
    `
	return r.findLoans(ctx, query, borrowerID)
}

func (r *Repository) findLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("can't scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	return loans, nil
}

// Settle flips an active loan to settled. Settling twice is a conflict: the
// active->settled transition happens exactly once.
func (r *Repository) Settle(ctx context.Context, loanID int) error {
	query := `
        UPDATE loans
        SET status = 'settled'
        WHERE id = $1 AND status = 'active'
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, loanID)
		if err != nil {
			zap.L().Error("can't settle loan", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrLoanAlreadySettled
		}
		return nil
	})
}
