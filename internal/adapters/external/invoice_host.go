package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// HTTPInvoiceHostAdapter hands invoices to the hosting container over HTTP.
// The container shows its native payment sheet and answers once the user
// has finished, so a call may block for as long as the timeout allows.
type HTTPInvoiceHostAdapter struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

type HTTPInvoiceHostParams struct {
	URL     string
	Timeout time.Duration
	Logger  ports.Logger
}

// InvoiceHostResponse is the host's answer to an invoice submission
type InvoiceHostResponse struct {
	Status string `json:"status"`
}

func NewHTTPInvoiceHostAdapter(params HTTPInvoiceHostParams) *HTTPInvoiceHostAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &HTTPInvoiceHostAdapter{
		url:    params.URL,
		client: &http.Client{Timeout: timeout},
		logger: params.Logger,
	}
}

// SubmitInvoice posts the invoice and returns the terminal status.
// Statuses the host invents are reported as failed.
func (h *HTTPInvoiceHostAdapter) SubmitInvoice(ctx context.Context, invoice ports.Invoice) (ports.InvoiceStatus, error) {
	body, err := json.Marshal(invoice)
	if err != nil {
		return "", errors.NewPaymentError("failed to encode invoice", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewPaymentError("failed to build invoice request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", errors.NewExternalAPIError("failed to reach invoice host", err)
	}
	defer closeBody(resp.Body, h.logger, "invoice_host")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.NewExternalAPIError(fmt.Sprintf("invoice host returned status %d", resp.StatusCode), nil)
	}

	var hostResp InvoiceHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&hostResp); err != nil {
		return "", errors.NewExternalAPIError("failed to decode invoice host response", err)
	}

	switch status := ports.InvoiceStatus(hostResp.Status); status {
	case ports.InvoiceStatusPaid, ports.InvoiceStatusCancelled, ports.InvoiceStatusFailed, ports.InvoiceStatusPending:
		return status, nil
	default:
		h.logger.Warn("Unknown invoice status", ports.F("status", hostResp.Status))
		return ports.InvoiceStatusFailed, nil
	}
}
