package payment

import (
	"context"

	"prayertimes.app/internal/core/entitlement"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const (
	InvoiceDescription = "Prayer Times Subscription"
	InvoicePayload     = "subscription_1_month"
	InvoiceCurrency    = "RUB"
	InvoiceStartParam  = "subscription"
	PriceLabel         = "1 Month Subscription"
	// PriceAmount is in kopecks (500.00 RUB)
	PriceAmount int64 = 50000

	FailureNotice = "Payment failed, please try again."
)

// Outcome of a payment attempt as seen by the caller
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomePaid
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaid:
		return "paid"
	case OutcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Flow drives a single subscription purchase through the invoice host.
// A nil host means the process runs outside a payment-capable container and
// every attempt is skipped.
type Flow struct {
	host          ports.InvoiceHost
	entitlement   *entitlement.Service
	notifier      ports.Notifier
	logger        ports.Logger
	providerToken string
}

type FlowDependencies struct {
	Host          ports.InvoiceHost
	Entitlement   *entitlement.Service
	Notifier      ports.Notifier
	Logger        ports.Logger
	ProviderToken string
}

func NewFlow(deps FlowDependencies) (*Flow, error) {
	if deps.Entitlement == nil {
		return nil, errors.NewValidationError("entitlement service is required")
	}
	if deps.Notifier == nil {
		return nil, errors.NewValidationError("notifier is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Flow{
		host:          deps.Host,
		entitlement:   deps.Entitlement,
		notifier:      deps.Notifier,
		logger:        deps.Logger,
		providerToken: deps.ProviderToken,
	}, nil
}

// Invoice returns the fixed one-month subscription invoice
func (f *Flow) Invoice() ports.Invoice {
	return ports.Invoice{
		Description:   InvoiceDescription,
		Payload:       InvoicePayload,
		ProviderToken: f.providerToken,
		Currency:      InvoiceCurrency,
		Prices:        []ports.LabeledPrice{{Label: PriceLabel, Amount: PriceAmount}},
		StartParam:    InvoiceStartParam,
	}
}

// HostAvailable reports whether payments can be submitted at all
func (f *Flow) HostAvailable() bool {
	return f.host != nil
}

// InitiatePayment submits the invoice and blocks until the host reports a
// terminal status or ctx ends. Only "paid" grants entitlement; every other
// status and any host error shows the failure notice. There is no retry.
func (f *Flow) InitiatePayment(ctx context.Context) (Outcome, error) {
	if f.host == nil {
		f.logger.Warn("Payment host not available, subscribe ignored")
		return OutcomeSkipped, nil
	}

	f.logger.Info("Submitting invoice", ports.F("payload", InvoicePayload))

	status, err := f.host.SubmitInvoice(ctx, f.Invoice())
	if err != nil {
		f.logger.Error("Invoice submission failed", ports.F("error", err))
		f.notifier.Notify(ctx, FailureNotice)
		return OutcomeFailed, errors.NewPaymentError("submit invoice", err)
	}

	if status != ports.InvoiceStatusPaid {
		f.logger.Info("Payment not completed", ports.F("status", status))
		f.notifier.Notify(ctx, FailureNotice)
		return OutcomeFailed, nil
	}

	if err := f.entitlement.MarkPaid(ctx); err != nil {
		// in-memory flag is set; only persistence failed
		f.logger.Warn("Paid flag not persisted", ports.F("error", err))
	}
	// a failure notice from an earlier attempt no longer applies
	f.notifier.Clear(ctx)

	f.logger.Info("Payment completed")
	return OutcomePaid, nil
}
