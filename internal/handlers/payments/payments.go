package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/dto"
	paymentservice "github.com/nvera/credicuotas/internal/service/paymentservice"
	"github.com/nvera/credicuotas/pkg/auth"
	"github.com/nvera/credicuotas/pkg/utils"
	"github.com/nvera/credicuotas/pkg/validate"
)

type Service interface {
	Submit(ctx context.Context, installmentID, borrowerID int, amount decimal.Decimal, receiptRef, comment string) (*domain.Payment, error)
	Confirm(ctx context.Context, paymentID, actorID int) (*domain.Payment, *domain.Installment, error)
	SubmitAndConfirm(ctx context.Context, installmentID, borrowerID int, amount decimal.Decimal, receiptRef, comment string, actorID int) (*domain.Payment, *domain.Installment, error)
	Edit(ctx context.Context, paymentID int, newAmount *decimal.Decimal, newReceiptRef, newComment *string) (*domain.Payment, error)
	Delete(ctx context.Context, paymentID int) error
	GetPayments(ctx context.Context, installmentID int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Submit godoc
//
//	@Summary		Submit a payment
//	@Description	Record an unconfirmed payment against an installment. The ledger moves only on confirmation.
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			installmentID	path		int							true	"Installment ID"
//	@Param			request			body		dto.SubmitPaymentRequestDTO	true	"Payment payload"
//	@Success		201				{object}	dto.PaymentResponseDTO		"Submitted payment"
//	@Failure		400				{object}	utils.Response				"Invalid amount"
//	@Failure		401				{object}	utils.Response				"User not authorized"
//	@Failure		403				{object}	utils.Response				"Installment belongs to another borrower"
//	@Failure		404				{object}	utils.Response				"Installment not found"
//	@Failure		409				{object}	utils.Response				"Loan already settled"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/installments/{installmentID}/payments [post]
func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	installmentID, err := strconv.Atoi(chi.URLParam(r, "installmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid installment id")
		return
	}
	var req dto.SubmitPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsPositiveAmount(req.Amount) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	amount, _ := decimal.NewFromString(req.Amount)

	borrowerID := r.Context().Value(auth.UserIDKey).(int)
	payment, err := h.paymentService.Submit(r.Context(), installmentID, borrowerID, amount, req.ReceiptRef, req.Comment)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentDTO(payment))
}

// Confirm godoc
//
//	@Summary		Confirm a payment
//	@Description	Count a submitted payment toward its installment and the borrower's fund.
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		int								true	"Payment ID"
//	@Success		200			{object}	dto.ConfirmPaymentResponseDTO	"Payment and updated installment"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		403			{object}	utils.Response					"Forbidden"
//	@Failure		404			{object}	utils.Response					"Payment not found"
//	@Failure		409			{object}	utils.Response					"Already confirmed"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/{paymentID}/confirm [post]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	actorID := r.Context().Value(auth.UserIDKey).(int)
	payment, installment, err := h.paymentService.Confirm(r.Context(), paymentID, actorID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{
		Payment:     dto.NewPaymentDTO(payment),
		Installment: dto.NewInstallmentDTO(installment),
	})
}

// SubmitAndConfirm godoc
//
//	@Summary		Submit and confirm in one step
//	@Description	Collector fast path: the collecting actor records and confirms a payment atomically.
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			installmentID	path		int								true	"Installment ID"
//	@Param			request			body		dto.SubmitPaymentRequestDTO		true	"Payment payload"
//	@Success		201				{object}	dto.ConfirmPaymentResponseDTO	"Payment and updated installment"
//	@Failure		400				{object}	utils.Response					"Invalid amount"
//	@Failure		401				{object}	utils.Response					"User not authorized"
//	@Failure		404				{object}	utils.Response					"Installment not found"
//	@Failure		409				{object}	utils.Response					"Loan already settled"
//	@Failure		500				{object}	utils.Response					"Internal server error"
//	@Router			/api/installments/{installmentID}/payments/confirmed [post]
func (h *PaymentHandler) SubmitAndConfirm(w http.ResponseWriter, r *http.Request) {
	installmentID, err := strconv.Atoi(chi.URLParam(r, "installmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid installment id")
		return
	}
	var req struct {
		dto.SubmitPaymentRequestDTO
		BorrowerID int `json:"borrower_id" example:"12"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsPositiveAmount(req.Amount) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	amount, _ := decimal.NewFromString(req.Amount)

	actorID := r.Context().Value(auth.UserIDKey).(int)
	payment, installment, err := h.paymentService.SubmitAndConfirm(r.Context(), installmentID, req.BorrowerID, amount, req.ReceiptRef, req.Comment, actorID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ConfirmPaymentResponseDTO{
		Payment:     dto.NewPaymentDTO(payment),
		Installment: dto.NewInstallmentDTO(installment),
	})
}

// Edit godoc
//
//	@Summary		Edit a payment
//	@Description	Change amount, receipt or comment. A confirmed payment's ledger effect moves by the amount delta.
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			paymentID	path		int							true	"Payment ID"
//	@Param			request		body		dto.EditPaymentRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.PaymentResponseDTO		"Updated payment"
//	@Failure		400			{object}	utils.Response				"Invalid amount"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Payment not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/payments/{paymentID} [patch]
func (h *PaymentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}
	var req dto.EditPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var newAmount *decimal.Decimal
	if req.Amount != nil {
		if !validate.IsPositiveAmount(*req.Amount) {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
			return
		}
		amount, _ := decimal.NewFromString(*req.Amount)
		newAmount = &amount
	}

	payment, err := h.paymentService.Edit(r.Context(), paymentID, newAmount, req.ReceiptRef, req.Comment)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentDTO(payment))
}

// Delete godoc
//
//	@Summary		Delete a payment
//	@Description	Remove a payment; a confirmed one is first reversed from the installment and the fund.
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Param			paymentID	path	int	true	"Payment ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{paymentID} [delete]
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	if err := h.paymentService.Delete(r.Context(), paymentID); err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetPayments godoc
//
//	@Summary		List payments of an installment
//	@Tags			Pagos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			installmentID	path		int						true	"Installment ID"
//	@Success		200				{array}		dto.PaymentResponseDTO	"Payments"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		404				{object}	utils.Response			"Installment not found"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/installments/{installmentID}/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	installmentID, err := strconv.Atoi(chi.URLParam(r, "installmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid installment id")
		return
	}

	payments, err := h.paymentService.GetPayments(r.Context(), installmentID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = dto.NewPaymentDTO(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paymentservice.ErrNotInstallmentBorrower):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrPaymentNotFound),
		errors.Is(err, paymentservice.ErrInstallmentNotFound),
		errors.Is(err, paymentservice.ErrLoanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrAlreadyConfirmed),
		errors.Is(err, paymentservice.ErrLoanSettled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
