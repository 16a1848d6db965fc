// Package httptransport exposes the activity log over HTTP.
package httptransport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-sampler/internal/api"
	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
	"activity-sampler/internal/logging"
	"activity-sampler/internal/services"
)

// Handler coordinates HTTP requests with the API.
type Handler struct {
	api    api.API
	logger logging.Logger
}

// NewHandler builds a Handler.
func NewHandler(a api.API, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Handler{api: a, logger: logger}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/activities", h.logActivity)
	mux.HandleFunc("GET /api/activities/recent", h.recentActivities)
	mux.HandleFunc("GET /api/report", h.report)
	mux.HandleFunc("GET /api/timesheet", h.timesheet)
	mux.HandleFunc("GET /api/statistics", h.statistics)
	mux.HandleFunc("GET /api/estimate", h.estimate)
	mux.HandleFunc("GET /api/burn-up", h.burnUp)
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// Routes returns a mux with every endpoint registered.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h.logRequests(mux)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request served", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) logActivity(w http.ResponseWriter, r *http.Request) {
	var req LogActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	duration, err := domain.ParseISODuration(req.Duration)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", fmt.Sprintf("duration: %v", err))
		return
	}
	cmd := api.LogActivityCommand{
		Duration: duration,
		Client:   req.Client,
		Project:  req.Project,
		Task:     req.Task,
		Notes:    req.Notes,
		Category: req.Category,
	}
	if req.Timestamp != nil {
		cmd.Timestamp = *req.Timestamp
	}

	activity, err := h.api.LogActivity(r.Context(), cmd)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityView(*activity))
}

func (h *Handler) recentActivities(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.RecentActivitiesQuery{
		Today:    params.date("today"),
		TimeZone: params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.RecentActivities(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecentActivitiesResponse(result))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.ReportQuery{
		From:     params.date("from"),
		To:       params.date("to"),
		Scope:    params.reportScope(),
		TimeZone: params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.Report(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(result))
}

func (h *Handler) timesheet(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.TimesheetQuery{
		From:     params.date("from"),
		To:       params.date("to"),
		TimeZone: params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.Timesheet(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimesheetResponse(result))
}

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.StatisticsQuery{
		Scope:      params.statisticsScope(),
		Categories: params.categories(),
		TimeZone:   params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.Statistics(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatisticsResponse(result))
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.EstimateQuery{
		Categories: params.categories(),
		TimeZone:   params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.Estimate(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEstimateResponse(result))
}

func (h *Handler) burnUp(w http.ResponseWriter, r *http.Request) {
	params := queryParams{values: r.URL.Query()}
	query := services.BurnUpQuery{
		From:       params.date("from"),
		To:         params.date("to"),
		Categories: params.categories(),
		TimeZone:   params.zone(),
	}
	if params.err != nil {
		h.fail(w, params.err)
		return
	}

	result, err := h.api.BurnUp(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBurnUpResponse(result))
}

// fail maps an error to its status: invalid records 422, bad parameters 400,
// everything else 500.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation):
		payload := map[string]interface{}{
			"type":   "validation_failed",
			"detail": err.Error(),
		}
		if index, ok := errors.RecordIndex(err); ok {
			payload["record"] = index
		}
		writeJSON(w, http.StatusUnprocessableEntity, payload)
	case errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		logging.LogError(h.logger, err, "http request")
		writeError(w, http.StatusInternalServerError, "server_error", errors.GetUserMessage(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
