package models

// WalletTransaction is a credit/debit ledger entry against the partner's
// internal balance.
type WalletTransaction struct {
	ID          int     `json:"id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=credit debit"`
	Description string  `json:"description"`
	PartnerID   int     `json:"partner_id"`
	Email       string  `json:"email"`
	Amount      string  `json:"amount" validate:"required"`
	PrevBalance string  `json:"prev_balance" validate:"required"`
	CurrBalance string  `json:"curr_balance" validate:"required"`
	Confirmed   bool    `json:"confirmed"`
	Reference   string  `json:"reference" validate:"required"`
	Genus       string  `json:"genus"`
	Status      string  `json:"status" validate:"required"`
	CreatedAt   string  `json:"createdAt" validate:"required"`
	UpdatedAt   string  `json:"updatedAt"`
	DeletedAt   *string `json:"deletedAt"`
}

// Consumer is the metered end-customer attached to a token purchase.
// Only the fields the dashboard surfaces are modeled here.
type Consumer struct {
	ID                 int     `json:"id"`
	AccountName        string  `json:"account_name"`
	Phone              *string `json:"phone"`
	AccountNumber      string  `json:"account_number"`
	AccountType        string  `json:"account_type"`
	District           string  `json:"district"`
	MeterType          string  `json:"meter_type"`
	PrepaidMeterNumber string  `json:"prepaid_meter_number"`
	Tariff             string  `json:"tariff"`
	Feeder             string  `json:"feeder"`
	MeterStatus        string  `json:"meter_status"`
	AccountStatus      string  `json:"account_status"`
}

// ConsumerTransaction is a token purchase vended on behalf of an
// end-customer meter.
type ConsumerTransaction struct {
	ID                   int       `json:"id" validate:"required"`
	TransactionID        int       `json:"transaction_id"`
	TransactionReference string    `json:"transaction_reference" validate:"required"`
	Status               string    `json:"status" validate:"required"`
	IssuerID             *int      `json:"issuer_id"`
	AccountNumber        string    `json:"account_number"`
	MeterNumber          string    `json:"meter_number"`
	PaymentType          string    `json:"payment_type"`
	Customer             string    `json:"customer"`
	AccountType          string    `json:"account_type"`
	Tariff               string    `json:"tariff"`
	Feeder               string    `json:"feeder"`
	Amount               string    `json:"amount" validate:"required"`
	DebtReconciliation   string    `json:"debt_reconciliation"`
	ChargedAmount        string    `json:"charged_amount"`
	VAT                  string    `json:"vat"`
	TransactionCharge    float64   `json:"transaction_charge"`
	KWH                  string    `json:"kwh"`
	Token                string    `json:"token"`
	Date                 string    `json:"date" validate:"required"`
	PartnerID            int       `json:"partner_id"`
	PartnerReference     string    `json:"partner_reference"`
	CreatedAt            string    `json:"createdAt"`
	UpdatedAt            string    `json:"updatedAt"`
	Partner              *Partner  `json:"partner,omitempty"`
	Consumer             *Consumer `json:"consumer,omitempty"`
}
