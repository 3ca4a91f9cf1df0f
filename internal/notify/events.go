package notify

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/domain"
)

const (
	PaymentConfirmedEvent string = "payment_confirmed"
	LoanOriginatedEvent   string = "loan_originated"
	LoanRenewedEvent      string = "loan_renewed"
)

func newNotification(recipientID int, eventType string, data map[string]any) *domain.Notification {
	payload, err := json.Marshal(data)
	if err != nil {
		payload = []byte("{}")
	}
	return &domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		EventType:   eventType,
		Payload:     payload,
		Status:      domain.NewNotificationStatus,
	}
}

func NewPaymentConfirmed(borrowerID int, payment *domain.Payment, installment *domain.Installment) *domain.Notification {
	return newNotification(borrowerID, PaymentConfirmedEvent, map[string]any{
		"payment_id":         payment.ID,
		"installment_id":     installment.ID,
		"amount":             payment.Amount.String(),
		"installment_status": installment.Status,
		"due_date":           installment.DueDate.Format("2006-01-02"),
	})
}

func NewLoanOriginated(loan *domain.Loan) *domain.Notification {
	return newNotification(loan.BorrowerID, LoanOriginatedEvent, map[string]any{
		"loan_id":          loan.ID,
		"monto_principal":  loan.Principal.String(),
		"monto_diario":     loan.DailyAmount.String(),
		"plazo_dias":       loan.TermDays,
		"total_a_devolver": loan.TotalToReturn.String(),
	})
}

func NewLoanRenewed(borrowerID int, loan *domain.Loan, debtRolledOver, cashDisbursed decimal.Decimal) *domain.Notification {
	return newNotification(borrowerID, LoanRenewedEvent, map[string]any{
		"loan_id":          loan.ID,
		"monto_principal":  loan.Principal.String(),
		"debt_rolled_over": debtRolledOver.String(),
		"cash_disbursed":   cashDisbursed.String(),
	})
}
