package dto

type SubmitPaymentRequestDTO struct {
	Amount     string `json:"amount" example:"4000"`
	ReceiptRef string `json:"receipt_ref" example:"receipts/2024/03/ab31f.jpg"`
	Comment    string `json:"comment" example:"transferencia"`
}

type EditPaymentRequestDTO struct {
	Amount     *string `json:"amount,omitempty" example:"3500"`
	ReceiptRef *string `json:"receipt_ref,omitempty" example:"receipts/2024/03/ab31f.jpg"`
	Comment    *string `json:"comment,omitempty" example:"monto corregido"`
}

type PaymentResponseDTO struct {
	ID            int    `json:"id" example:"55"`
	InstallmentID int    `json:"installment_id" example:"101"`
	BorrowerID    int    `json:"borrower_id" example:"12"`
	Amount        string `json:"amount" example:"4000"`
	Confirmed     bool   `json:"confirmed" example:"true"`
	ConfirmedBy   *int   `json:"confirmed_by,omitempty" example:"3"`
	ReceiptRef    string `json:"receipt_ref" example:"receipts/2024/03/ab31f.jpg"`
	Comment       string `json:"comment" example:"transferencia"`
	CreatedAt     string `json:"created_at" example:"2024-03-02T10:11:12Z"`
}

type ConfirmPaymentResponseDTO struct {
	Payment     PaymentResponseDTO     `json:"payment"`
	Installment InstallmentResponseDTO `json:"installment"`
}

type FundResponseDTO struct {
	FundBalance string `json:"fund_balance" example:"20000"`
}
