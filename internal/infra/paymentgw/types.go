package paymentgw

import "time"

// PreferenceRequest describes the payable "preference" asked of the provider
// for one held appointment. ExternalReference carries the appointment id so
// the webhook reconciler can map the payment back to the hold.
type PreferenceRequest struct {
	Title             string
	Quantity          int
	UnitPrice         float64
	PayerEmail        string
	PayerName         string
	ExternalReference string
	ExpiresAt         time.Time
	SuccessURL        string
	FailureURL        string
}

// Preference is the provider's payable object; InitPoint is the redirect URL
// the patient completes payment at.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// ProviderPayment is the authoritative payment record fetched from the
// provider by id. Status values follow the provider's vocabulary
// ("approved", "rejected", "pending", ...).
type ProviderPayment struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	StatusDetail      string     `json:"status_detail"`
	ExternalReference string     `json:"external_reference"`
	TransactionAmount float64    `json:"transaction_amount"`
	DateApproved      *time.Time `json:"date_approved"`
}

const StatusApproved = "approved"

type preferencePayload struct {
	Items             []preferenceItem  `json:"items"`
	Payer             preferencePayer   `json:"payer"`
	ExternalReference string            `json:"external_reference"`
	Expires           bool              `json:"expires"`
	ExpirationDateTo  string            `json:"expiration_date_to"`
	BackURLs          map[string]string `json:"back_urls,omitempty"`
}

type preferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type preferencePayer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type providerPaymentPayload struct {
	ID                any     `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	DateApproved      string  `json:"date_approved"`
}
