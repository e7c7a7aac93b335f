package handler

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	RegisterUser = "POST /api/users"
	ListUsers    = "GET /api/users"
	AddExercise  = "POST /api/users/{id}/exercises"
	GetLog       = "GET /api/users/{id}/logs"
)

// UserIDParam is the path parameter carrying the user id.
const UserIDParam = "id"

type TrackerHandler struct {
	logs           *zap.SugaredLogger
	requestDecoder RequestDecoder
	tracker        ExerciseService
	recorder       Recorder
}

func NewTrackerHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, exerciseService ExerciseService, recorder Recorder) *TrackerHandler {
	return &TrackerHandler{
		logs:           logger,
		requestDecoder: requestDecoder,
		tracker:        exerciseService,
		recorder:       recorder,
	}
}

func (h *TrackerHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.CreateUserRequest
	if err := h.requestDecoder.DecodePayload(r, &payload); err != nil {
		h.fail(w, fmt.Errorf("%w: %w", core.ErrValidation, err), "Could not register user", RegisterUser, requestId)
		return
	}

	user, err := h.tracker.RegisterUser(r.Context(), payload.ToUsername())
	if err != nil {
		h.fail(w, err, "Could not register user", RegisterUser, requestId)
		return
	}

	h.recorder.UserRegistered()
	h.respond(w, user, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.fail(w, err, "Could not list users", ListUsers, requestId)
		return
	}

	h.respond(w, users, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := chi.URLParam(r, UserIDParam)

	var payload payload.AddExerciseRequest
	if err := h.requestDecoder.DecodePayload(r, &payload); err != nil {
		h.fail(w, fmt.Errorf("%w: %w", core.ErrValidation, err), "Could not add exercise", AddExercise, requestId)
		return
	}

	if userID == "" {
		h.fail(w, core.ErrUserNotFound, "Could not add exercise", AddExercise, requestId)
		return
	}

	record, err := h.tracker.AddExercise(r.Context(), userID, payload.ToMessage())
	if err != nil {
		h.fail(w, err, "Could not add exercise", AddExercise, requestId)
		return
	}

	h.recorder.ExerciseRecorded()
	h.respond(w, record, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := chi.URLParam(r, UserIDParam)

	if userID == "" {
		h.fail(w, core.ErrUserNotFound, "Could not retrieve log", GetLog, requestId)
		return
	}

	query := payload.NewLogsRequest(r.URL.Query()).ToQuery()

	log, err := h.tracker.GetLog(r.Context(), userID, query)
	if err != nil {
		h.fail(w, err, "Could not retrieve log", GetLog, requestId)
		return
	}

	h.logs.Infow("log retrieved",
		"user_id", log.UserID,
		"count", log.Count,
		"handler", GetLog,
		"request_id", requestId)

	h.respond(w, log, http.StatusOK, requestId)
}

// fail maps err onto a status code and error envelope. Unknown errors never leak their detail.
func (h *TrackerHandler) fail(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrValidation):
		httpCode, resp.Code = http.StatusBadRequest, CodeValidationFailed
	case errors.Is(err, core.ErrUserNotFound):
		httpCode, resp.Code = http.StatusNotFound, CodeNotFound
	case errors.Is(err, core.ErrUsernameTaken):
		httpCode, resp.Code = http.StatusConflict, CodeConflict
	case errors.Is(err, core.ErrStoreUnavailable):
		httpCode, resp.Code = http.StatusServiceUnavailable, CodeStoreUnavailable
		resp.Error = core.ErrStoreUnavailable.Error()
	default:
		httpCode, resp.Code = http.StatusInternalServerError, CodeInternal
		resp.Error = "unexpected error occurred"
	}

	h.recorder.RequestFailed(resp.Code)
	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw(message,
		"error", err,
		"code", resp.Code,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *TrackerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
