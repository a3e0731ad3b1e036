// Package v1alpha1 serves the generation API over HTTP
package v1alpha1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/orchestrators/generation"
)

const (
	// DefaultPollInterval is how often the websocket stream checks a job
	DefaultPollInterval = time.Second

	// MaxBodyBytes bounds a settings POST body
	MaxBodyBytes = 1 << 20

	genKeyParam = "gen_key"
	writeWait   = 10 * time.Second
)

// GenerateHandlerConfig holds dependencies for the generate handler
type GenerateHandlerConfig struct {
	GenerationService generation.Service
	// CORSOrigin is sent as Access-Control-Allow-Origin. Defaults to "*".
	CORSOrigin   string
	PollInterval time.Duration
}

// Validate ensures all required dependencies are present
func (c *GenerateHandlerConfig) Validate() error {
	if c.GenerationService == nil {
		return errors.InvalidArgument("generation service is required")
	}
	if c.PollInterval < 0 {
		return errors.InvalidArgument("poll interval must not be negative")
	}
	return nil
}

// GenerateHandler serves /generate, /generate/ws and /health
type GenerateHandler struct {
	generationService generation.Service
	corsOrigin        string
	pollInterval      time.Duration
	upgrader          websocket.Upgrader
}

// NewGenerateHandler creates a new generate handler with the given configuration
func NewGenerateHandler(cfg *GenerateHandlerConfig) (*GenerateHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	interval := cfg.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}

	return &GenerateHandler{
		generationService: cfg.GenerationService,
		corsOrigin:        origin,
		pollInterval:      interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return origin == "*" || r.Header.Get("Origin") == origin
			},
		},
	}, nil
}

// Routes returns the handler's mux
func (h *GenerateHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate", h.Generate)
	mux.HandleFunc("GET /generate/ws", h.Stream)
	mux.HandleFunc("GET /health", h.Health)
	return h.cors(mux)
}

func (h *GenerateHandler) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", h.corsOrigin)
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// Generate starts or polls a generation for the gen_key query parameter
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet, http.MethodPost:
	default:
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		writeError(w, errors.New(errors.CodeInvalidArgument, "method not allowed"), http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		writeError(w, errors.InvalidArgumentf("failed to read body: %v", err), http.StatusRequestEntityTooLarge)
		return
	}

	out, err := h.generationService.Poll(r.Context(), &generation.PollInput{
		GenKey: r.URL.Query().Get(genKeyParam),
		Body:   bytes.TrimSpace(body),
	})
	if err != nil {
		slog.Error("generation poll failed",
			"gen_key", r.URL.Query().Get(genKeyParam),
			"error", err,
		)
		writeError(w, err, errors.GetCode(err).HTTPStatus())
		return
	}

	writeOutput(w, out)
}

// statusMessage is one websocket frame. The artifact itself is never streamed;
// a client fetches it from /generate once code is 200.
type statusMessage struct {
	Code   int             `json:"code"`
	Status json.RawMessage `json:"status,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Stream pushes status changes for gen_key until the job reaches a terminal
// state or the client goes away
func (h *GenerateHandler) Stream(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get(genKeyParam)
	if key == "" {
		writeOutput(w, &generation.PollOutput{
			Code:        generation.StatusMissingKey,
			ContentType: generation.ContentTypeJSON,
			Body:        []byte(`{"error":"error"}`),
		})
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "gen_key", key, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// reader only exists to notice the client closing
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	var last []byte
	for {
		msg, done := h.status(ctx, key)
		data, err := json.Marshal(msg)
		if err != nil {
			slog.Error("failed to marshal status message", "gen_key", key, "error", err)
			return
		}
		if !bytes.Equal(data, last) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			last = data
		}
		if done {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *GenerateHandler) status(ctx context.Context, key string) (*statusMessage, bool) {
	out, err := h.generationService.Status(ctx, &generation.StatusInput{GenKey: key})
	if err != nil {
		return &statusMessage{
			Code:  errors.GetCode(err).HTTPStatus(),
			Error: errors.Display(err),
		}, true
	}

	msg := &statusMessage{Code: out.Code}
	switch {
	case out.Code == generation.StatusFailed:
		msg.Error = string(out.Body)
	case out.ContentType == generation.ContentTypeJSON:
		msg.Status = out.Body
	}
	return msg, out.Terminal()
}

// Health reports queue depth
func (h *GenerateHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.generationService.Stats(r.Context())
	if err != nil {
		writeError(w, err, errors.GetCode(err).HTTPStatus())
		return
	}

	body, err := json.Marshal(map[string]any{
		"status":       "ok",
		"pending":      stats.Pending,
		"running":      stats.Running,
		"finished":     stats.Finished,
		"current_jobs": stats.CurrentJobs,
	})
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to encode health"), http.StatusInternalServerError)
		return
	}

	writeOutput(w, &generation.PollOutput{
		Code:        http.StatusOK,
		ContentType: generation.ContentTypeJSON,
		Body:        body,
	})
}

func writeOutput(w http.ResponseWriter, out *generation.PollOutput) {
	w.Header().Set("Content-Type", out.ContentType)
	w.WriteHeader(out.Code)
	_, _ = w.Write(out.Body)
}

func writeError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", generation.ContentTypeText)
	w.WriteHeader(code)
	_, _ = io.WriteString(w, errors.Display(err))
}
