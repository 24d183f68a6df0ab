package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

func tierResult(tier model.Tier) *model.DiagnosticResult {
	return &model.DiagnosticResult{
		ID: "diag-1",
		Prospect: model.ProspectInfo{
			CompanyName:  "Banco Andino",
			ContactName:  "María Gómez",
			ContactEmail: "maria@bancoandino.co",
		},
		Score: model.DiagnosticScore{Tier: tier},
		QuickWins: []model.QuickWin{{
			Title:           "Chatbot de Atención al Cliente",
			EstimatedImpact: "Reducción 70% en tiempo de respuesta",
		}},
	}
}

func TestSendConfirmation_TierA(t *testing.T) {
	var got Email
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-123"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	sender := NewSender(client, "Equipo Andes", "diagnostico@andes.co")

	id, err := sender.SendConfirmation(context.Background(), tierResult(model.TierA))
	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)

	assert.Equal(t, "Equipo Andes <diagnostico@andes.co>", got.From)
	assert.Equal(t, []string{"maria@bancoandino.co"}, got.To)
	assert.Equal(t, subjectTierA, got.Subject)
	assert.Contains(t, got.HTML, "María Gómez")
	assert.Contains(t, got.HTML, "Banco Andino")
	assert.Contains(t, got.HTML, "Chatbot de Atención al Cliente")
}

func TestSendConfirmation_SubjectByTier(t *testing.T) {
	tests := []struct {
		tier model.Tier
		want string
	}{
		{model.TierA, subjectTierA},
		{model.TierB, subjectTierB},
		{model.TierC, subjectTierC},
	}

	for _, tt := range tests {
		subject, body := content(tierResult(tt.tier))
		assert.Equal(t, tt.want, subject)
		assert.Contains(t, body, "María Gómez")
	}
}

func TestSendConfirmation_NoEmail(t *testing.T) {
	sender := NewSender(NewClient("k"), "Equipo Andes", "diagnostico@andes.co")

	r := tierResult(model.TierA)
	r.Prospect.ContactEmail = ""

	_, err := sender.SendConfirmation(context.Background(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contact email")
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Send(context.Background(), Email{To: []string{"x@y.co"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 422")
}

func TestSend_RetriesTransientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"id":"msg-retry"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithRetry(2)).(*httpClient)
	client.retry.initialBackoff = time.Millisecond

	resp, err := client.Send(context.Background(), Email{To: []string{"x@y.co"}})
	require.NoError(t, err)
	assert.Equal(t, "msg-retry", resp.ID)
	assert.Equal(t, 2, calls)
}

func TestSend_NoRetryOnClientError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithRetry(3)).(*httpClient)
	client.retry.initialBackoff = time.Millisecond

	_, err := client.Send(context.Background(), Email{})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSend_RateLimiterHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"ok"}`))
	}))
	defer srv.Close()

	// First send consumes the burst; a cancelled context must fail fast on the
	// second instead of blocking.
	limited := NewClient("k", WithRateLimit(0.0001, 1), WithBaseURL(srv.URL))
	_, err := limited.Send(context.Background(), Email{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.Send(ctx, Email{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
