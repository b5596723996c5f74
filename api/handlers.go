/*
handlers.go - HTTP API handlers for the rota service

PURPOSE:
  Exposes the schedule generator and its persistence seam via REST. Handles
  HTTP request/response, JSON serialization, and delegates everything else
  to the rota engine and the store.

ENDPOINTS:
  Schedule:
    GET  /api/schedule/{year}/{month}           Generate fresh
    GET  /api/schedule/{year}/{month}/report    Per-employee shift load
    POST /api/schedule/{year}/{month}/publish   Freeze the month
    GET  /api/schedule/{year}/{month}/published Published + overrides
    POST /api/schedule/{year}/{month}/overrides Record a manual move

  Roster:
    GET  /api/roster                            Active roster
    PUT  /api/roster                            Replace active roster

  Holidays:
    GET  /api/holidays/{year}                   Observed holidays

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Nothing published for the month
  - 500: Store failures

SECURITY NOTE:
  No authentication; the service runs on the dealership's internal network
  behind the office proxy.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kaikoapy/basecamp-sub000/roster"
	"github.com/kaikoapy/basecamp-sub000/rota"
	"github.com/kaikoapy/basecamp-sub000/store/sqlite"
)

// activeRosterName is the store key for the roster the service schedules with.
const activeRosterName = "active"

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	mu     sync.RWMutex
	roster rota.Roster
}

// NewHandler creates a handler scheduling with the given roster.
func NewHandler(store *sqlite.Store, r rota.Roster) *Handler {
	return &Handler{Store: store, roster: r}
}

func (h *Handler) activeRoster() rota.Roster {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.roster
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// GetSchedule generates the month fresh. It schedules with the active
// roster unless ?roster= names a saved one, which lets the desk manager
// preview a month against a draft crew without swapping the live roster.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	crew := h.activeRoster()
	if name := r.URL.Query().Get("roster"); name != "" {
		data, err := h.Store.GetRoster(r.Context(), name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load roster", err)
			return
		}
		if data == nil {
			writeError(w, http.StatusNotFound, "No roster with that name", nil)
			return
		}
		crew, err = roster.Parse(data)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Stored roster is invalid", err)
			return
		}
	}

	days, err := rota.NewGenerator(crew).Generate(year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to generate schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(year, month, days, false))
}

// GetShiftLoadReport summarizes the generated month per employee.
func (h *Handler) GetShiftLoadReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	crew := h.activeRoster()
	days, err := rota.NewGenerator(crew).Generate(year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to generate schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftLoadDTOs(rota.BuildShiftLoadReport(days, crew)))
}

// PublishSchedule generates and freezes the month.
func (h *Handler) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	days, err := rota.NewGenerator(h.activeRoster()).Generate(year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to generate schedule", err)
		return
	}
	if err := h.Store.PublishSchedule(r.Context(), year, month, days); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to publish schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(year, month, days, true))
}

// GetPublishedSchedule returns the frozen month with overrides replayed.
func (h *Handler) GetPublishedSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	days, err := h.Store.GetPublishedSchedule(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}
	if days == nil {
		writeError(w, http.StatusNotFound, "No published schedule for this month", nil)
		return
	}

	overrides, err := h.Store.ListOverrides(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load overrides", err)
		return
	}
	if err := rota.ApplyOverrides(days, overrides); err != nil {
		// A stored override that no longer applies is logged, not fatal:
		// the published schedule is still the source of truth.
		log.Printf("[api] stale override on %d-%02d: %v", year, month, err)
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(year, month, days, true))
}

// AddOverride records a manual shift move against the published month.
func (h *Handler) AddOverride(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	var req OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", err)
		return
	}
	ov := rota.Override{Date: date, Employee: req.Employee, ToShift: req.ToShift}

	// Validate against the published month before persisting.
	days, err := h.Store.GetPublishedSchedule(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}
	if days == nil {
		writeError(w, http.StatusNotFound, "No published schedule for this month", nil)
		return
	}
	prior, err := h.Store.ListOverrides(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load overrides", err)
		return
	}
	_ = rota.ApplyOverrides(days, prior)
	if err := rota.ApplyOverride(days, ov); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid override", err)
		return
	}

	if err := h.Store.AddOverride(r.Context(), year, month, ov); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save override", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(year, month, days, true))
}

// =============================================================================
// ROSTER HANDLERS
// =============================================================================

// GetRoster returns the active roster config.
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	data, err := roster.Marshal(h.activeRoster())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode roster", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// PutRoster replaces the active roster and persists it.
func (h *Handler) PutRoster(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	crew, err := roster.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid roster", err)
		return
	}
	if err := h.Store.SaveRoster(r.Context(), activeRosterName, body); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save roster", err)
		return
	}

	h.mu.Lock()
	h.roster = crew
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]int{"employees": len(crew)})
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the observed holidays of a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	resolved := rota.HolidaysForYear(year)
	dtos := make([]HolidayDTO, len(resolved))
	for i, rh := range resolved {
		dtos[i] = HolidayDTO{Date: rh.Date.Format(dateLayout), Name: rh.Name, Closed: rh.Closed}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return 0, 0, false
	}
	month := time.Month(monthNum)
	if month < time.January || month > time.December {
		writeError(w, http.StatusBadRequest, "Invalid month",
			&rota.InvalidArgumentError{Field: "month", Value: monthNum, Reason: "must be 1-12"})
		return 0, 0, false
	}
	return year, month, true
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
		if errors.Is(err, rota.ErrInvalidArgument) && status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, resp)
}
