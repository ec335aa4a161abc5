package ports

import "context"

// LabeledPrice is a single price line; Amount is in minor currency units
type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Invoice is the fixed-shape invoice submitted to the payment host
type Invoice struct {
	Description   string         `json:"description"`
	Payload       string         `json:"payload"`
	ProviderToken string         `json:"provider_token"`
	Currency      string         `json:"currency"`
	Prices        []LabeledPrice `json:"prices"`
	StartParam    string         `json:"start_param"`
}

// InvoiceStatus is the terminal status reported by the payment host
type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusFailed    InvoiceStatus = "failed"
	InvoiceStatusPending   InvoiceStatus = "pending"
)

// InvoiceHost defines the capability to submit an invoice and wait for its outcome
type InvoiceHost interface {
	SubmitInvoice(ctx context.Context, invoice Invoice) (InvoiceStatus, error)
}
