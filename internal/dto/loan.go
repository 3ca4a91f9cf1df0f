package dto

type OriginateLoanRequestDTO struct {
	BorrowerID   int    `json:"borrower_id" example:"12"`
	Principal    string `json:"monto_principal" example:"100000"`
	DailyAmount  string `json:"monto_diario" example:"4000"`
	TermDays     int    `json:"plazo_dias" example:"30"`
	GrantedAt    string `json:"fecha_otorgado" example:"2024-03-01"`
	CollectsFrom string `json:"fecha_inicio_cobro" example:"2024-03-02"`
}

type LoanResponseDTO struct {
	ID              int    `json:"id" example:"7"`
	BorrowerID      int    `json:"borrower_id" example:"12"`
	Principal       string `json:"monto_principal" example:"100000"`
	InterestPercent string `json:"porcentaje_interes" example:"20"`
	TotalToReturn   string `json:"total_a_devolver" example:"120000"`
	TermDays        int    `json:"plazo_dias" example:"30"`
	DailyAmount     string `json:"monto_diario" example:"4000"`
	GrantedAt       string `json:"fecha_otorgado" example:"2024-03-01"`
	CollectsFrom    string `json:"fecha_inicio_cobro" example:"2024-03-02"`
	Status          string `json:"status" example:"active"`
}

type InstallmentResponseDTO struct {
	ID             int    `json:"id" example:"101"`
	DueDate        string `json:"due_date" example:"2024-03-02"`
	ExpectedAmount string `json:"expected_amount" example:"4000"`
	PaidAmount     string `json:"paid_amount" example:"1500"`
	Status         string `json:"status" example:"partial"`
}

type LoanDetailResponseDTO struct {
	Loan         LoanResponseDTO          `json:"loan"`
	Installments []InstallmentResponseDTO `json:"installments"`
}
