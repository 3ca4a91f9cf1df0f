package repo

import (
	"github.com/nvera/credicuotas/internal/pg"
	installmentrepo "github.com/nvera/credicuotas/internal/repo/installment-repo"
	loanrepo "github.com/nvera/credicuotas/internal/repo/loan-repo"
	notificationrepo "github.com/nvera/credicuotas/internal/repo/notification-repo"
	paymentrepo "github.com/nvera/credicuotas/internal/repo/payment-repo"
	userrepo "github.com/nvera/credicuotas/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	LoanRepo         *loanrepo.Repository
	InstallmentRepo  *installmentrepo.Repository
	PaymentRepo      *paymentrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn, txManager),
		LoanRepo:         loanrepo.New(conn, txManager),
		InstallmentRepo:  installmentrepo.New(conn, txManager),
		PaymentRepo:      paymentrepo.New(conn, txManager),
		NotificationRepo: notificationrepo.New(conn, txManager),
	}
}
