package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andes-consulting/readiness-cli/internal/diagnostic"
	"github.com/andes-consulting/readiness-cli/internal/intake"
	"github.com/andes-consulting/readiness-cli/internal/notify"
	"github.com/andes-consulting/readiness-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the diagnostic HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		var sender *notify.Sender
		if cfg.Notify.Enabled {
			mailer := notify.NewClient(cfg.Notify.APIKey,
				notify.WithBaseURL(cfg.Notify.BaseURL),
				notify.WithRateLimit(cfg.Notify.RatePerSecond, 2),
			)
			sender = notify.NewSender(mailer, cfg.Notify.SenderName, cfg.Notify.SenderEmail)
		}

		router := newRouter(serverDeps{
			svc:            diagnostic.NewService(),
			store:          s,
			sender:         sender,
			resubmitWindow: time.Duration(cfg.Server.ResubmitWindowMinutes) * time.Minute,
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// serverDeps carries the handler dependencies so the router is testable.
type serverDeps struct {
	svc            *diagnostic.Service
	store          store.Store
	sender         *notify.Sender
	resubmitWindow time.Duration
}

// diagnosticResponse is the submission acknowledgement returned to the
// frontend.
type diagnosticResponse struct {
	Success          bool   `json:"success"`
	DiagnosticID     string `json:"diagnostic_id"`
	Tier             string `json:"tier"`
	ScoreTotal       int    `json:"score_total"`
	Archetype        string `json:"arquetipo"`
	SuggestedService string `json:"servicio_sugerido"`
	AmountMin        int64  `json:"monto_min"`
	AmountMax        int64  `json:"monto_max"`
	Timestamp        string `json:"timestamp"`
	EmailSent        bool   `json:"email_sent"`
}

func newRouter(deps serverDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/questions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"questions": intake.Catalogue(),
		})
	})

	r.Post("/api/diagnostics", deps.handleSubmit)

	r.Get("/api/diagnostics/{id}", func(w http.ResponseWriter, req *http.Request) {
		result, err := deps.store.GetDiagnostic(req.Context(), chi.URLParam(req, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "diagnostic not found")
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Get("/api/analytics", func(w http.ResponseWriter, req *http.Request) {
		data, err := deps.store.Analytics(req.Context())
		if err != nil {
			zap.L().Error("analytics query failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "analytics unavailable")
			return
		}
		writeJSON(w, http.StatusOK, data)
	})

	return r
}

func (deps serverDeps) handleSubmit(w http.ResponseWriter, req *http.Request) {
	var sub intake.Submission
	if err := json.NewDecoder(req.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := sub.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := req.Context()

	recent, err := deps.store.HasRecentDiagnostic(ctx, sub.ContactEmail, time.Now().UTC().Add(-deps.resubmitWindow))
	if err != nil {
		zap.L().Error("resubmission check failed", zap.Error(err))
	} else if recent {
		writeError(w, http.StatusTooManyRequests, "diagnóstico procesado recientemente, espere unos minutos")
		return
	}

	result := deps.svc.Run(sub.Prospect(), sub.Responses())

	saved := true
	if err := deps.store.SaveDiagnostic(ctx, result); err != nil {
		saved = false
		zap.L().Error("save diagnostic failed",
			zap.String("diagnostic_id", result.ID),
			zap.Error(err),
		)
	}

	emailSent := false
	if deps.sender != nil {
		// Delivery is best-effort; the submission already succeeded.
		if _, err := deps.sender.SendConfirmation(ctx, result); err != nil {
			zap.L().Warn("confirmation email failed",
				zap.String("diagnostic_id", result.ID),
				zap.Error(err),
			)
		} else {
			emailSent = true
		}
	}

	writeJSON(w, http.StatusOK, diagnosticResponse{
		Success:          saved,
		DiagnosticID:     result.ID,
		Tier:             string(result.Score.Tier),
		ScoreTotal:       result.Score.Final,
		Archetype:        result.Archetype.Name,
		SuggestedService: result.SuggestedService,
		AmountMin:        result.SuggestedAmountMin,
		AmountMax:        result.SuggestedAmountMax,
		Timestamp:        result.CreatedAt.Format(time.RFC3339),
		EmailSent:        emailSent,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
