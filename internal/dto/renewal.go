package dto

type EligibleLoanDTO struct {
	LoanID                int    `json:"loan_id" example:"7"`
	TotalPaid             string `json:"total_paid" example:"110000"`
	PercentPaid           string `json:"percent_of_principal_paid" example:"1.1"`
	RemainingInstallments int    `json:"remaining_installments" example:"1"`
	PendingDebt           string `json:"pending_debt" example:"10000"`
}

type EligibilityResponseDTO struct {
	Eligible         bool              `json:"eligible" example:"true"`
	EligibleLoans    []EligibleLoanDTO `json:"eligible_loans"`
	TotalPendingDebt string            `json:"total_pending_debt" example:"80000"`
}

type CreateRenewalRequestDTO struct {
	BorrowerID      int    `json:"borrower_id" example:"12"`
	NewPrincipal    string `json:"new_principal" example:"200000"`
	InterestPercent string `json:"new_interest_percent" example:"20"`
	TermDays        int    `json:"new_plazo_dias" example:"40"`
	CollectsFrom    string `json:"new_fecha_inicio_cobro" example:"2024-04-01"`
	LoanIDs         []int  `json:"loan_ids_to_close" example:"5,6"`
}

type RenewalResponseDTO struct {
	Loan           LoanResponseDTO `json:"loan"`
	CashDisbursed  string          `json:"cash_disbursed" example:"120000"`
	DebtRolledOver string          `json:"debt_rolled_over" example:"80000"`
}
