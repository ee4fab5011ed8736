package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/teletraan/cybertron-api/internal/calendar"
	"github.com/teletraan/cybertron-api/internal/config"
	"github.com/teletraan/cybertron-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
	}
}

// DateResponse is the standard representation of a converted date.
type DateResponse struct {
	Date        calendar.Date `json:"date"`
	Seconds     float64       `json:"seconds"`
	Formatted   string        `json:"formatted"`
	Explanation string        `json:"explanation,omitempty"`
}

// newDateResponse builds the full response for a date, including its
// canonical seconds and both text renderings.
func newDateResponse(d calendar.Date) DateResponse {
	return DateResponse{
		Date:        d,
		Seconds:     d.Seconds(),
		Formatted:   d.String(),
		Explanation: d.Explain(),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"env":    h.cfg.Env,
	})
}

// decodeValid decodes and validates a JSON request body. On failure it
// writes the 400 response itself and returns false.
func (h *Handlers) decodeValid(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := decodeJSON(r, v); err != nil {
		h.logger.Debug("bad request body", slog.Any("error", err))
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := ValidateStruct(v); err != nil {
		WriteBadRequest(w, err.Error())
		return false
	}
	return true
}

// ParseDate handles POST /api/v1/dates/parse
func (h *Handlers) ParseDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := calendar.Parse(req.Text)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	WriteSuccess(w, newDateResponse(date))
}

// FromSeconds handles GET /api/v1/dates/from-seconds?seconds=N
func (h *Handlers) FromSeconds(w http.ResponseWriter, r *http.Request) {
	secondsStr := r.URL.Query().Get("seconds")
	if secondsStr == "" {
		WriteBadRequest(w, "seconds query parameter is required")
		return
	}

	seconds, err := strconv.ParseFloat(secondsStr, 64)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid seconds value: %s", secondsStr))
		return
	}
	if seconds < 0 {
		WriteBadRequest(w, "seconds must not be negative")
		return
	}

	WriteSuccess(w, newDateResponse(calendar.FromSeconds(seconds)))
}

// Now handles GET /api/v1/dates/now
//
// The engine's time origin is pinned to the Unix epoch here so the
// current moment has a Cybertronian date. That anchoring is a choice of
// this API, not of the engine.
func (h *Handlers) Now(w http.ResponseWriter, r *http.Request) {
	seconds := float64(time.Now().Unix())
	WriteSuccess(w, newDateResponse(calendar.FromSeconds(seconds)))
}

// DifferenceResponse pairs the scalar distance between two dates with
// its arc-notation rendering.
type DifferenceResponse struct {
	Seconds    float64       `json:"seconds"`
	Difference calendar.Date `json:"difference"`
	Formatted  string        `json:"formatted"`
}

// Difference handles POST /api/v1/dates/difference
func (h *Handlers) Difference(w http.ResponseWriter, r *http.Request) {
	var req struct {
		First  string `json:"first" validate:"required"`
		Second string `json:"second" validate:"required"`
	}
	if !h.decodeValid(w, r, &req) {
		return
	}

	first, err := calendar.Parse(req.First)
	if err != nil {
		writeEngineError(w, r, fmt.Errorf("first date: %w", err))
		return
	}
	second, err := calendar.Parse(req.Second)
	if err != nil {
		writeEngineError(w, r, fmt.Errorf("second date: %w", err))
		return
	}

	seconds, span := calendar.Difference(first, second)
	WriteSuccess(w, DifferenceResponse{
		Seconds:    seconds,
		Difference: span,
		Formatted:  span.String(),
	})
}

// shiftRequest is the body for the add and subtract endpoints.
type shiftRequest struct {
	Date     string `json:"date" validate:"required"`
	Duration string `json:"duration" validate:"required"`
}

// AddDuration handles POST /api/v1/dates/add
func (h *Handlers) AddDuration(w http.ResponseWriter, r *http.Request) {
	h.shiftDate(w, r, calendar.Add)
}

// SubtractDuration handles POST /api/v1/dates/subtract
func (h *Handlers) SubtractDuration(w http.ResponseWriter, r *http.Request) {
	h.shiftDate(w, r, calendar.Subtract)
}

// shiftDate implements add and subtract, which differ only in the
// engine operation applied.
func (h *Handlers) shiftDate(w http.ResponseWriter, r *http.Request, op func(calendar.Date, string) (calendar.Date, error)) {
	var req shiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := calendar.Parse(req.Date)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	shifted, err := op(date, req.Duration)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	WriteSuccess(w, newDateResponse(shifted))
}

// ParseDuration handles POST /api/v1/durations/parse
func (h *Handlers) ParseDuration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if !h.decodeValid(w, r, &req) {
		return
	}

	WriteSuccess(w, map[string]float64{
		"seconds": calendar.ParseDuration(req.Text),
	})
}

// writeEngineError maps engine errors to API error responses. Every
// engine failure is a client-input problem; anything unrecognized is a
// server error.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidDate):
		logger.Debug(r.Context(), "conversion rejected", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, calendar.ErrInvalidDuration):
		logger.Debug(r.Context(), "conversion rejected", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_DURATION")
	case errors.Is(err, calendar.ErrNegativeResult):
		logger.Debug(r.Context(), "conversion rejected", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, err.Error(), "NEGATIVE_RESULT")
	default:
		logger.Error(r.Context(), "unexpected conversion error", err)
		WriteInternalError(w, "Conversion failed")
	}
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
