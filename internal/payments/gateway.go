package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentdesk/server/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrBadSignature         = errors.New("webhook signature mismatch")
)

// Gateway is the client for the hosted payment processor. The processor
// is opaque to us: we send an amount and description, get back a client
// secret for the hosted payment element, and later reconcile status
// through the webhook.
type Gateway struct {
	logger  *logrus.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	secret  string
}

func NewGateway(cfg *config.Config, logger *logrus.Logger) *Gateway {
	return &Gateway{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: cfg.Payments.GatewayURL,
		apiKey:  cfg.Payments.APIKey,
		secret:  cfg.Payments.WebhookSecret,
	}
}

// Configured reports whether a gateway URL was provided.
func (g *Gateway) Configured() bool {
	return g.baseURL != ""
}

// Intent is the gateway's answer to an intent request. The client secret
// is handed to the hosted payment form; the reference keys our pending
// payment row.
type Intent struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret"`
}

type intentRequest struct {
	Reference   string  `json:"reference"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreateIntent asks the processor for a payment intent. The reference is
// generated locally so the pending payment row can be written before the
// gateway answers the webhook.
func (g *Gateway) CreateIntent(amount float64, description string) (*Intent, error) {
	if !g.Configured() {
		return nil, ErrGatewayNotConfigured
	}

	reference := uuid.NewString()
	body, err := json.Marshal(intentRequest{
		Reference:   reference,
		Amount:      amount,
		Currency:    "usd",
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		g.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(payload),
		}).Error("Payment gateway rejected intent")
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return &Intent{Reference: reference, ClientSecret: out.ClientSecret}, nil
}

// WebhookEvent is the processor's status notification.
type WebhookEvent struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// VerifyWebhook checks the HMAC-SHA256 signature the processor sends in
// its signature header and decodes the event.
func (g *Gateway) VerifyWebhook(body []byte, signature string) (*WebhookEvent, error) {
	if g.secret != "" {
		mac := hmac.New(sha256.New, []byte(g.secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(signature)) {
			return nil, ErrBadSignature
		}
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	return &event, nil
}
