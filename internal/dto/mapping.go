package dto

import (
	"time"

	"github.com/nvera/credicuotas/internal/domain"
)

const dateLayout = "2006-01-02"

func NewLoanDTO(loan *domain.Loan) LoanResponseDTO {
	return LoanResponseDTO{
		ID:              loan.ID,
		BorrowerID:      loan.BorrowerID,
		Principal:       loan.Principal.String(),
		InterestPercent: loan.InterestPercent.String(),
		TotalToReturn:   loan.TotalToReturn.String(),
		TermDays:        loan.TermDays,
		DailyAmount:     loan.DailyAmount.String(),
		GrantedAt:       loan.GrantedAt.Format(dateLayout),
		CollectsFrom:    loan.CollectsFrom.Format(dateLayout),
		Status:          loan.Status,
	}
}

func NewInstallmentDTO(inst *domain.Installment) InstallmentResponseDTO {
	return InstallmentResponseDTO{
		ID:             inst.ID,
		DueDate:        inst.DueDate.Format(dateLayout),
		ExpectedAmount: inst.ExpectedAmount.String(),
		PaidAmount:     inst.PaidAmount.String(),
		Status:         inst.Status,
	}
}

func NewInstallmentDTOs(installments []domain.Installment) []InstallmentResponseDTO {
	result := make([]InstallmentResponseDTO, len(installments))
	for i := range installments {
		result[i] = NewInstallmentDTO(&installments[i])
	}
	return result
}

func NewPaymentDTO(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:            p.ID,
		InstallmentID: p.InstallmentID,
		BorrowerID:    p.BorrowerID,
		Amount:        p.Amount.String(),
		Confirmed:     p.Confirmed,
		ConfirmedBy:   p.ConfirmedBy,
		ReceiptRef:    p.ReceiptRef,
		Comment:       p.Comment,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
