package userrepo

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

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, fund_balance, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.FundBalance, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, fund_balance, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.FundBalance, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, login, password_hash, role, fund_balance, created_at
    `
	row := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role)

	var created domain.User
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.Role, &created.FundBalance, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// AdjustFundBalance adds delta (possibly negative) to the borrower's
// accumulated fund. The fund is a side ledger: it is only ever moved by
// deltas, never set outright.
func (r *Repository) AdjustFundBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.User, error) {
	query := `
        UPDATE users
        SET fund_balance = fund_balance + $1
        WHERE id = $2
        RETURNING id, login, password_hash, role, fund_balance, created_at
    `
	var updated domain.User
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, delta, userID)
		err := row.Scan(&updated.ID, &updated.Login, &updated.PasswordHash, &updated.Role, &updated.FundBalance, &updated.CreatedAt)
		if err != nil {
			zap.L().Error("can't adjust fund balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
