package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-consulting/readiness-cli/internal/diagnostic"
	"github.com/andes-consulting/readiness-cli/internal/intake"
	"github.com/andes-consulting/readiness-cli/internal/model"
	"github.com/andes-consulting/readiness-cli/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(t.Context()))
	t.Cleanup(func() { s.Close() })

	srv := httptest.NewServer(newRouter(serverDeps{
		svc:            diagnostic.NewService(),
		store:          s,
		resubmitWindow: 5 * time.Minute,
	}))
	t.Cleanup(srv.Close)

	return srv, s
}

func testSubmission() intake.Submission {
	return intake.Submission{
		CompanyName:   "Logística Andina",
		Sector:        "🚚 Logística/Transporte",
		RevenueRange:  "$2,000M - $10,000M COP",
		EmployeeRange: "51-200",
		ContactName:   "Carlos Ruiz",
		ContactEmail:  "carlos@logandina.co",
		Role:          "Gerente de Operaciones",
		City:          "Medellín",

		Motivations:            []string{model.MotivationSpecific},
		DecisionMaking:         "Basados en Excel que alimentamos nosotros",
		CriticalProcesses:      model.ProcessesPersonDependent,
		RepetitiveTasks:        "40-60% del tiempo",
		InfoSharing:            "Más o menos, hay que pedirse cosas por email/WhatsApp",
		TechTeam:               "Sí, pequeño (1-4 personas)",
		ImplementationCapacity: "Tendríamos que aprobar presupuesto (1-3 meses)",
		RecentInvestment:       "Sí, inversiones moderadas ($10-50M COP)",
		MainFrustration:        model.FrustrationNoVisibility,
		Urgency:                model.UrgencyThisYear,
		ApprovalProcess:        model.ApprovalPartners,
		BudgetRange:            model.BudgetMid,
	}
}

func postSubmission(t *testing.T, srv *httptest.Server, sub intake.Submission) *http.Response {
	t.Helper()

	body, err := json.Marshal(sub)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/diagnostics", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestRouter_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouter_Questions(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/questions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Success   bool              `json:"success"`
		Questions []intake.Question `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Len(t, payload.Questions, 12)
}

func TestRouter_SubmitAndFetch(t *testing.T) {
	srv, s := newTestServer(t)

	resp := postSubmission(t, srv, testSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ack diagnosticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)
	assert.NotEmpty(t, ack.DiagnosticID)
	assert.Contains(t, []string{"A", "B", "C"}, ack.Tier)
	assert.Positive(t, ack.ScoreTotal)
	assert.NotEmpty(t, ack.SuggestedService)
	assert.False(t, ack.EmailSent)

	// Persisted and retrievable by ID.
	saved, err := s.GetDiagnostic(t.Context(), ack.DiagnosticID)
	require.NoError(t, err)
	assert.Equal(t, "Logística Andina", saved.Prospect.CompanyName)

	getResp, err := http.Get(srv.URL + "/api/diagnostics/" + ack.DiagnosticID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var fetched model.DiagnosticResult
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fetched))
	assert.Equal(t, ack.DiagnosticID, fetched.ID)
	assert.Equal(t, ack.ScoreTotal, fetched.Score.Final)
}

func TestRouter_SubmitInvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/diagnostics", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_SubmitMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	sub := testSubmission()
	sub.CompanyName = ""
	sub.Motivations = nil

	resp := postSubmission(t, srv, sub)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Contains(t, payload["error"], "nombre_empresa")
	assert.Contains(t, payload["error"], "Q4")
}

func TestRouter_ResubmissionRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	first := postSubmission(t, srv, testSubmission())
	require.Equal(t, http.StatusOK, first.StatusCode)

	second := postSubmission(t, srv, testSubmission())
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)

	// A different contact is unaffected.
	other := testSubmission()
	other.ContactEmail = "maria@logandina.co"
	third := postSubmission(t, srv, other)
	assert.Equal(t, http.StatusOK, third.StatusCode)
}

func TestRouter_GetDiagnosticNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/diagnostics/no-such-id")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Analytics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postSubmission(t, srv, testSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	aResp, err := http.Get(srv.URL + "/api/analytics")
	require.NoError(t, err)
	defer aResp.Body.Close()

	require.Equal(t, http.StatusOK, aResp.StatusCode)

	var data model.DashboardData
	require.NoError(t, json.NewDecoder(aResp.Body).Decode(&data))
	assert.Equal(t, 1, data.TotalDiagnostics)
	assert.Positive(t, data.AverageScore)
}
