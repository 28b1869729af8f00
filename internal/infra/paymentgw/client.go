package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clinicbook/internal/pkg/config"
	"clinicbook/internal/pkg/errs"
)

var (
	ErrPaymentNotFound = errs.New("payment not found at provider")
	ErrProviderFailure = errs.New("payment provider request failed")
)

// Client talks to the payment provider's REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// CreatePreference registers a payable preference for a held appointment and
// returns the provider's redirect URL.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	payload := preferencePayload{
		Items: []preferenceItem{{
			Title:     req.Title,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
		}},
		Payer: preferencePayer{
			Name:  req.PayerName,
			Email: req.PayerEmail,
		},
		ExternalReference: req.ExternalReference,
		Expires:           true,
		ExpirationDateTo:  req.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if req.SuccessURL != "" || req.FailureURL != "" {
		payload.BackURLs = map[string]string{
			"success": req.SuccessURL,
			"failure": req.FailureURL,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "marshal preference payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build preference request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "post preference"), ErrProviderFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(readAPIError(resp), ErrProviderFailure)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, errs.Wrap(err, "decode preference response")
	}
	return &pref, nil
}

// GetPayment fetches the authoritative payment record by provider id. The
// webhook reconciler never trusts the notification body and always re-reads
// the payment here.
func (c *Client) GetPayment(ctx context.Context, id string) (*ProviderPayment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+id, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build payment request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "get payment"), ErrProviderFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.Mark(errs.Newf("payment %s not found", id), ErrPaymentNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(readAPIError(resp), ErrProviderFailure)
	}

	// the provider sends numeric ids; UseNumber keeps them verbatim
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var raw providerPaymentPayload
	if err := dec.Decode(&raw); err != nil {
		return nil, errs.Wrap(err, "decode payment response")
	}

	payment := &ProviderPayment{
		ID:                fmt.Sprint(raw.ID),
		Status:            raw.Status,
		StatusDetail:      raw.StatusDetail,
		ExternalReference: raw.ExternalReference,
		TransactionAmount: raw.TransactionAmount,
	}
	if raw.DateApproved != "" {
		if approvedAt, parseErr := time.Parse(time.RFC3339, raw.DateApproved); parseErr == nil {
			payment.DateApproved = &approvedAt
		}
	}
	return payment, nil
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return errs.Newf("provider returned %d: %s", resp.StatusCode, string(body))
}
