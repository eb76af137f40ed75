package models

// Highlight is a dashboard KPI value with its change versus the previous
// period, in percent.
type Highlight struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// Highlights groups the four dashboard KPI cards.
type Highlights struct {
	VendedTokens           Highlight `json:"vendedTokens"`
	Revenue                Highlight `json:"revenue"`
	SuccessfulTransactions Highlight `json:"successfulTransactions"`
	FailedTransactions     Highlight `json:"failedTransactions"`
}

// Trend is the chart series behind the vended-tokens and revenue graphs.
// Labels and both series are index-aligned.
type Trend struct {
	Labels       []string  `json:"labels" validate:"required"`
	VendedTokens []float64 `json:"vendedTokens" validate:"required"`
	Revenue      []float64 `json:"revenue" validate:"required"`
}

// RecentTransaction is the compact row shown on the dashboard landing page.
type RecentTransaction struct {
	ID            int     `json:"id" validate:"required"`
	Reference     string  `json:"reference" validate:"required"`
	Name          string  `json:"name"`
	Tokens        float64 `json:"tokens"`
	Amount        float64 `json:"amount"`
	AccountNumber string  `json:"accountNumber"`
	MeterNumber   string  `json:"meterNumber"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// DashboardAnalytics is the payload of the dashboard landing endpoint.
type DashboardAnalytics struct {
	Highlights         Highlights          `json:"highlights"`
	Trend              Trend               `json:"trend" validate:"required"`
	RecentTransactions []RecentTransaction `json:"recentTransactions" validate:"dive"`
}
