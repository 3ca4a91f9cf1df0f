package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/pkg/auth"
)

type User struct {
	ID           int             `db:"id"`
	Login        string          `db:"login"`
	PasswordHash string          `db:"password_hash"`
	Role         auth.Role       `db:"role"`
	FundBalance  decimal.Decimal `db:"fund_balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

const (
	// ActiveLoanStatus the loan is being collected.
	ActiveLoanStatus string = "active"
	// SettledLoanStatus the loan is closed, by full payoff or by renewal.
	SettledLoanStatus string = "settled"
)

type Loan struct {
	ID              int             `db:"id"`
	BorrowerID      int             `db:"borrower_id"`
	Principal       decimal.Decimal `db:"monto_principal"`
	InterestPercent decimal.Decimal `db:"porcentaje_interes"`
	TotalToReturn   decimal.Decimal `db:"total_a_devolver"`
	TermDays        int             `db:"plazo_dias"`
	DailyAmount     decimal.Decimal `db:"monto_diario"`
	GrantedAt       time.Time       `db:"fecha_otorgado"`
	CollectsFrom    time.Time       `db:"fecha_inicio_cobro"`
	Status          string          `db:"status"`
}

const (
	PendingInstallmentStatus string = "pending"
	PartialInstallmentStatus string = "partial"
	PaidInstallmentStatus    string = "paid"
)

type Installment struct {
	ID             int             `db:"id"`
	LoanID         int             `db:"loan_id"`
	DueDate        time.Time       `db:"due_date"`
	ExpectedAmount decimal.Decimal `db:"expected_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Status         string          `db:"status"`
}

type Payment struct {
	ID            int             `db:"id"`
	InstallmentID int             `db:"installment_id"`
	BorrowerID    int             `db:"borrower_id"`
	Amount        decimal.Decimal `db:"amount"`
	Confirmed     bool            `db:"confirmed"`
	ConfirmedBy   *int            `db:"confirmed_by"`
	ReceiptRef    string          `db:"receipt_ref"`
	Comment       string          `db:"comment"`
	CreatedAt     time.Time       `db:"created_at"`
}

const (
	NewNotificationStatus    string = "new"
	SentNotificationStatus   string = "sent"
	FailedNotificationStatus string = "failed"
)

// Notification is one outbox row: written in the same transaction as the
// ledger mutation it reports, delivered later by the dispatcher.
type Notification struct {
	ID          string     `db:"id"`
	RecipientID int        `db:"recipient_id"`
	EventType   string     `db:"event_type"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	CreatedAt   time.Time  `db:"created_at"`
	SentAt      *time.Time `db:"sent_at"`
}

// InstallmentStatusFor derives an installment status from its paid and
// expected amounts. Status is never stored independently of this rule.
func InstallmentStatusFor(paid, expected decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(expected):
		return PaidInstallmentStatus
	case paid.IsPositive():
		return PartialInstallmentStatus
	default:
		return PendingInstallmentStatus
	}
}
