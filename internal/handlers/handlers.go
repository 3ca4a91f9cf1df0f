package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nvera/credicuotas/docs"
	authhandlers "github.com/nvera/credicuotas/internal/handlers/auth"
	fundshandlers "github.com/nvera/credicuotas/internal/handlers/funds"
	loanshandlers "github.com/nvera/credicuotas/internal/handlers/loans"
	paymentshandlers "github.com/nvera/credicuotas/internal/handlers/payments"
	renewalhandlers "github.com/nvera/credicuotas/internal/handlers/renewal"
	"github.com/nvera/credicuotas/internal/service"
	"github.com/nvera/credicuotas/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Originate(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	SubmitAndConfirm(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type RenewalHandler interface {
	CheckEligibility(w http.ResponseWriter, r *http.Request)
	CreateRenewal(w http.ResponseWriter, r *http.Request)
}

type FundHandler interface {
	GetFund(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LoanHandler    LoanHandler
	PaymentHandler PaymentHandler
	RenewalHandler RenewalHandler
	FundHandler    FundHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LoanHandler:    loanshandlers.New(s.LoanService),
		PaymentHandler: paymentshandlers.New(s.PaymentService),
		RenewalHandler: renewalhandlers.New(s.RenewalService),
		FundHandler:    fundshandlers.New(s.FundService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/user/fund", h.FundHandler.GetFund)

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.LoanHandler.GetLoans)
				r.Get("/{loanID}", h.LoanHandler.GetLoan)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Post("/", h.LoanHandler.Originate)
			})

			r.Route("/installments/{installmentID}/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.Submit)
				r.With(auth.RequireRoles(auth.RoleCollector, auth.RoleAdmin)).Get("/", h.PaymentHandler.GetPayments)
				r.With(auth.RequireRoles(auth.RoleCollector, auth.RoleAdmin)).Post("/confirmed", h.PaymentHandler.SubmitAndConfirm)
			})

			r.Route("/payments/{paymentID}", func(r chi.Router) {
				r.Use(auth.RequireRoles(auth.RoleCollector, auth.RoleAdmin))
				r.Post("/confirm", h.PaymentHandler.Confirm)
				r.Patch("/", h.PaymentHandler.Edit)
				r.Delete("/", h.PaymentHandler.Delete)
			})

			r.Route("/renewal", func(r chi.Router) {
				r.Get("/eligibility", h.RenewalHandler.CheckEligibility)
				r.With(auth.RequireRoles(auth.RoleAdmin)).Post("/", h.RenewalHandler.CreateRenewal)
			})
		})
	})

	return r
}
