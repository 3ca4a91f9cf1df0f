package service

import (
	"github.com/nvera/credicuotas/internal/handlers/auth"
	"github.com/nvera/credicuotas/internal/handlers/funds"
	"github.com/nvera/credicuotas/internal/handlers/loans"
	"github.com/nvera/credicuotas/internal/handlers/payments"
	"github.com/nvera/credicuotas/internal/handlers/renewal"

	pkgauth "github.com/nvera/credicuotas/pkg/auth"

	"github.com/nvera/credicuotas/internal/pg"
	"github.com/nvera/credicuotas/internal/repo"
	authservice "github.com/nvera/credicuotas/internal/service/authservice"
	fundservice "github.com/nvera/credicuotas/internal/service/fundservice"
	loanservice "github.com/nvera/credicuotas/internal/service/loanservice"
	paymentservice "github.com/nvera/credicuotas/internal/service/paymentservice"
	renewalservice "github.com/nvera/credicuotas/internal/service/renewalservice"
)

type Services struct {
	AuthService    auth.Service
	LoanService    loans.Service
	PaymentService payments.Service
	RenewalService renewal.Service
	FundService    funds.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	fundService := fundservice.New(repo.UserRepo)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.InstallmentRepo, repo.LoanRepo, fundService, repo.NotificationRepo, txManager)
	loanService := loanservice.New(repo.LoanRepo, repo.InstallmentRepo, repo.NotificationRepo, txManager)
	renewalService := renewalservice.New(repo.LoanRepo, repo.InstallmentRepo, repo.NotificationRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		LoanService:    loanService,
		PaymentService: paymentService,
		RenewalService: renewalService,
		FundService:    fundService,
	}
}
