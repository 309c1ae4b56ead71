package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"funnelkit/internal/metrics"
)

const formContentType = "application/x-www-form-urlencoded"

// Client talks to a Stripe-compatible payment intents API.
type Client struct {
	logger    *slog.Logger
	baseURL   string
	secretKey string
	http      *http.Client
	metrics   *metrics.Metrics
}

// Config holds gateway client configuration.
type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// NewClient creates a gateway client with a bounded request timeout.
func NewClient(cfg Config, logger *slog.Logger, m *metrics.Metrics) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.stripe.com"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		logger:    logger.With("component", "gateway"),
		baseURL:   base,
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: timeout},
		metrics:   m,
	}
}

type intentPayload struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type errorPayload struct {
	Error struct {
		Type        string `json:"type"`
		Code        string `json:"code"`
		Message     string `json:"message"`
		DeclineCode string `json:"decline_code"`
	} `json:"error"`
}

// CreateIntent initiates a payment intent the buyer completes client-side.
func (c *Client) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.AmountCents, 10))
	form.Set("currency", params.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	setMetadata(form, params.Metadata)

	return c.doIntent(ctx, "create_intent", http.MethodPost, "/v1/payment_intents", form)
}

// RetrieveIntent fetches the current status of an intent.
func (c *Client) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	path := "/v1/payment_intents/" + url.PathEscape(id)
	return c.doIntent(ctx, "retrieve_intent", http.MethodGet, path, nil)
}

// ChargeOffSession creates and immediately confirms an intent against the
// customer's stored payment method.
func (c *Client) ChargeOffSession(ctx context.Context, params OffSessionParams) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.AmountCents, 10))
	form.Set("currency", params.Currency)
	form.Set("customer", params.CustomerRef)
	form.Set("payment_method", params.PaymentMethodRef)
	form.Set("off_session", "true")
	form.Set("confirm", "true")
	setMetadata(form, params.Metadata)

	return c.doIntent(ctx, "charge_off_session", http.MethodPost, "/v1/payment_intents", form)
}

func (c *Client) doIntent(ctx context.Context, operation, method, path string, form url.Values) (*Intent, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating gateway request: %w", err)
	}

	req.SetBasicAuth(c.secretKey, "")
	if form != nil {
		req.Header.Set("Content-Type", formContentType)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		c.logger.Error("gateway request failed", "operation", operation, "error", err)

		return nil, ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(operation, "read_error", start)
		return nil, ErrGatewayUnavailable
	}

	if resp.StatusCode >= 500 {
		c.observe(operation, "server_error", start)
		c.logger.Error("gateway server error", "operation", operation, "status", resp.StatusCode)

		return nil, ErrGatewayUnavailable
	}

	if resp.StatusCode >= 400 {
		c.observe(operation, "client_error", start)
		return nil, c.mapError(operation, data)
	}

	var payload intentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.observe(operation, "decode_error", start)
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}

	c.observe(operation, "ok", start)

	return &Intent{
		ID:           payload.ID,
		ClientSecret: payload.ClientSecret,
		Status:       IntentStatus(payload.Status),
	}, nil
}

// mapError translates provider error payloads into the package taxonomy.
func (c *Client) mapError(operation string, data []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrGatewayUnavailable
	}

	code := payload.Error.Code
	if payload.Error.DeclineCode != "" {
		code = payload.Error.DeclineCode
	}

	c.logger.Warn("gateway rejected request",
		"operation", operation, "type", payload.Error.Type, "code", code)

	switch {
	case payload.Error.Code == "card_declined",
		payload.Error.Type == "card_error":
		return ErrCardDeclined
	case payload.Error.Code == "payment_method_required",
		payload.Error.Code == "missing_payment_method":
		return ErrRequiresPaymentMethod
	default:
		// Remaining 4xx payloads (invalid_request_error and friends) are
		// permanent: the provider will reject the identical request again.
		return fmt.Errorf("%w: %s", ErrInvalidRequest, code)
	}
}

func (c *Client) observe(operation, status string, start time.Time) {
	if c.metrics == nil {
		return
	}

	c.metrics.GatewayRequests.WithLabelValues(operation, status).Inc()
	c.metrics.GatewayLatency.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

func setMetadata(form url.Values, metadata map[string]string) {
	for key, val := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), val)
	}
}
