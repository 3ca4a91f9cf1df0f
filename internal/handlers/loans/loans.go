package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/dto"
	loanservice "github.com/nvera/credicuotas/internal/service/loanservice"
	"github.com/nvera/credicuotas/pkg/auth"
	"github.com/nvera/credicuotas/pkg/utils"
	"github.com/nvera/credicuotas/pkg/validate"
)

type Service interface {
	Originate(ctx context.Context, borrowerID int, principal, dailyAmount decimal.Decimal, termDays int, grantedAt, collectsFrom time.Time) (*domain.Loan, []domain.Installment, error)
	GetLoans(ctx context.Context, borrowerID int) ([]domain.Loan, error)
	GetLoan(ctx context.Context, loanID int) (*domain.Loan, []domain.Installment, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

const dateLayout = "2006-01-02"

// Originate godoc
//
//	@Summary		Originate a loan
//	@Description	Disburse a new daily-installment loan and generate its schedule.
//	@Tags			Préstamos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OriginateLoanRequestDTO	true	"Loan terms"
//	@Success		201		{object}	dto.LoanDetailResponseDTO	"Created loan with schedule"
//	@Failure		400		{object}	utils.Response				"Invalid loan input"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loans [post]
func (h *LoanHandler) Originate(w http.ResponseWriter, r *http.Request) {
	var req dto.OriginateLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsPositiveAmount(req.Principal) || !validate.IsPositiveAmount(req.DailyAmount) ||
		!validate.IsDate(req.GrantedAt) || !validate.IsDate(req.CollectsFrom) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan input")
		return
	}

	principal, _ := decimal.NewFromString(req.Principal)
	dailyAmount, _ := decimal.NewFromString(req.DailyAmount)
	grantedAt, _ := time.Parse(dateLayout, req.GrantedAt)
	collectsFrom, _ := time.Parse(dateLayout, req.CollectsFrom)

	loan, installments, err := h.loanService.Originate(r.Context(), req.BorrowerID, principal, dailyAmount, req.TermDays, grantedAt, collectsFrom)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrInvalidLoanInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.LoanDetailResponseDTO{
		Loan:         dto.NewLoanDTO(loan),
		Installments: dto.NewInstallmentDTOs(installments),
	})
}

// GetLoans godoc
//
//	@Summary		List loans
//	@Description	List the authenticated borrower's loans. Collectors and admins may pass ?borrower_id=.
//	@Tags			Préstamos
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LoanResponseDTO	"Loans"
//	@Success		204	{object}	utils.Response		"No loans"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/loans [get]
func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	borrowerID, ok := resolveBorrowerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	loans, err := h.loanService.GetLoans(r.Context(), borrowerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch loans")
		return
	}
	if len(loans) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No loans found")
		return
	}

	response := make([]dto.LoanResponseDTO, len(loans))
	for i := range loans {
		response[i] = dto.NewLoanDTO(&loans[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetLoan godoc
//
//	@Summary		Get one loan with its schedule
//	@Tags			Préstamos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			loanID	path		int							true	"Loan ID"
//	@Success		200		{object}	dto.LoanDetailResponseDTO	"Loan with installments"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		404		{object}	utils.Response				"Loan not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loans/{loanID} [get]
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.Atoi(chi.URLParam(r, "loanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	loan, installments, err := h.loanService.GetLoan(r.Context(), loanID)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrLoanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(auth.Role)
	if !role.CanCollect() && loan.BorrowerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoanDetailResponseDTO{
		Loan:         dto.NewLoanDTO(loan),
		Installments: dto.NewInstallmentDTOs(installments),
	})
}

// resolveBorrowerID picks whose loans to read: borrowers always read their
// own, staff may target any borrower via query parameter.
func resolveBorrowerID(r *http.Request) (int, bool) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(auth.Role)

	param := r.URL.Query().Get("borrower_id")
	if param == "" {
		return userID, true
	}
	target, err := strconv.Atoi(param)
	if err != nil {
		return 0, false
	}
	if target != userID && !role.CanCollect() {
		return 0, false
	}
	return target, true
}
