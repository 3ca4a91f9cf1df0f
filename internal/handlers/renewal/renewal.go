package renewal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/dto"
	renewalservice "github.com/nvera/credicuotas/internal/service/renewalservice"
	"github.com/nvera/credicuotas/pkg/auth"
	"github.com/nvera/credicuotas/pkg/utils"
	"github.com/nvera/credicuotas/pkg/validate"
)

type Service interface {
	CheckEligibility(ctx context.Context, borrowerID int) (*renewalservice.EligibilityReport, error)
	CreateRenewal(ctx context.Context, borrowerID int, newPrincipal, newInterestPercent decimal.Decimal, newTermDays int, collectsFrom time.Time, loanIDs []int) (*renewalservice.RenewalResult, error)
}

type RenewalHandler struct {
	renewalService Service
}

func New(renewalService Service) *RenewalHandler {
	return &RenewalHandler{
		renewalService: renewalService,
	}
}

const dateLayout = "2006-01-02"

// CheckEligibility godoc
//
//	@Summary		Check renewal eligibility
//	@Description	Report which of the borrower's active loans qualify for consolidation and their pending debt.
//	@Tags			Renovación
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EligibilityResponseDTO	"Eligibility report"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Forbidden"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/renewal/eligibility [get]
func (h *RenewalHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	borrowerID, ok := resolveBorrowerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	report, err := h.renewalService.CheckEligibility(r.Context(), borrowerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.EligibilityResponseDTO{
		Eligible:         report.Eligible,
		EligibleLoans:    make([]dto.EligibleLoanDTO, len(report.EligibleLoans)),
		TotalPendingDebt: report.TotalPendingDebt.String(),
	}
	for i, el := range report.EligibleLoans {
		response.EligibleLoans[i] = dto.EligibleLoanDTO{
			LoanID:                el.Loan.ID,
			TotalPaid:             el.TotalPaid.String(),
			PercentPaid:           el.PercentPaid.String(),
			RemainingInstallments: el.RemainingInstallments,
			PendingDebt:           el.PendingDebt.String(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateRenewal godoc
//
//	@Summary		Consolidate loans into a renewal
//	@Description	Atomically retire the named loans into one new loan, rolling their pending debt into the new principal.
//	@Tags			Renovación
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRenewalRequestDTO	true	"Renewal terms"
//	@Success		201		{object}	dto.RenewalResponseDTO		"New loan with disbursement breakdown"
//	@Failure		400		{object}	utils.Response				"Invalid renewal input"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Loan not found"
//	@Failure		409		{object}	utils.Response				"Loan not active"
//	@Failure		422		{object}	utils.Response				"Insufficient renewal amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/renewal [post]
func (h *RenewalHandler) CreateRenewal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRenewalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsPositiveAmount(req.NewPrincipal) || !validate.IsDate(req.CollectsFrom) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid renewal input")
		return
	}
	interestPercent, err := decimal.NewFromString(req.InterestPercent)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid renewal input")
		return
	}

	newPrincipal, _ := decimal.NewFromString(req.NewPrincipal)
	collectsFrom, _ := time.Parse(dateLayout, req.CollectsFrom)

	result, err := h.renewalService.CreateRenewal(r.Context(), req.BorrowerID, newPrincipal, interestPercent, req.TermDays, collectsFrom, req.LoanIDs)
	if err != nil {
		switch {
		case errors.Is(err, renewalservice.ErrInvalidRenewalInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, renewalservice.ErrLoanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, renewalservice.ErrNotBorrowersLoan):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, renewalservice.ErrLoanNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, renewalservice.ErrInsufficientRenewalAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.RenewalResponseDTO{
		Loan:           dto.NewLoanDTO(result.Loan),
		CashDisbursed:  result.CashDisbursed.String(),
		DebtRolledOver: result.DebtRolledOver.String(),
	})
}

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
