package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentdesk/server/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(url string) *Gateway {
	cfg := &config.Config{}
	cfg.Payments.GatewayURL = url
	cfg.Payments.APIKey = "sk_test_123"
	cfg.Payments.WebhookSecret = "whsec_test"

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewGateway(cfg, logger)
}

func TestCreateIntent(t *testing.T) {
	var gotAuth string
	var gotBody intentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"client_secret": "cs_abc"})
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	intent, err := g.CreateIntent(1450, "March rent")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, 1450.0, gotBody.Amount)
	assert.Equal(t, "March rent", gotBody.Description)
	assert.Equal(t, "cs_abc", intent.ClientSecret)
	assert.NotEmpty(t, intent.Reference)
	assert.Equal(t, gotBody.Reference, intent.Reference)
}

func TestCreateIntent_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"card declined"}`, http.StatusPaymentRequired)
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	_, err := g.CreateIntent(100, "rent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestCreateIntent_NotConfigured(t *testing.T) {
	g := newTestGateway("")
	_, err := g.CreateIntent(100, "rent")
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestVerifyWebhook(t *testing.T) {
	g := newTestGateway("http://gateway.invalid")

	body := []byte(`{"reference":"ref-1","status":"completed"}`)
	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	event, err := g.VerifyWebhook(body, signature)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", event.Reference)
	assert.Equal(t, "completed", event.Status)

	_, err = g.VerifyWebhook(body, "deadbeef")
	assert.ErrorIs(t, err, ErrBadSignature)
}
