package payment

import (
	"context"       // Request-scoped cancellation
	"encoding/json" // Response decoding
	"fmt"           // Error formatting
	"net/http"      // HTTP client
	"net/url"       // Form encoding
	"strconv"       // Integer formatting
	"strings"       // Request body reader
	"time"          // Client timeout
)

const defaultBaseURL = "https://api.stripe.com"

// StripeClient talks to Stripe's payment_intents API directly over its
// form-encoded HTTP surface.
type StripeClient struct {
	secretKey  string       // API secret, sent as a bearer token
	baseURL    string       // Overridable for tests
	httpClient *http.Client // Shared client with a hard timeout
}

// NewStripeClient builds a client against the live Stripe API
func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey:  secretKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// intentResponse is the slice of Stripe's response this service reads
type intentResponse struct {
	ClientSecret string `json:"client_secret"` // Opaque handle for the client
	Error        struct {
		Message string `json:"message"` // Stripe's failure description
	} `json:"error"`
}

// CreateIntent requests a card payment intent for the given minor-unit
// amount and returns the intent's client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10)) // Minor-unit integer amount
	form.Set("currency", "usd")                            // Charged currency
	form.Set("payment_method_types[]", "card")             // Card payments only

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var body intentResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode payment intent response: %w", err)
	}
	// Stripe reports failures with a non-2xx status and an error object
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("payment intent failed status=%d: %s", res.StatusCode, body.Error.Message)
	}
	return body.ClientSecret, nil
}
