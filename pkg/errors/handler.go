package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrorBody is the uniform error envelope returned for every non-2xx
// response. Stack is only populated outside production.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Stack      string `json:"stack,omitempty"`
}

// ErrorResponse wraps ErrorBody under an "error" key
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorHandler is the single terminal handler for all error paths.
// Handlers never write error responses themselves; they hand the error
// here and this is the only place the caller-visible shape is decided.
type ErrorHandler struct {
	logger       *zap.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler. includeStack should be
// false in production so traces are never disclosed.
func NewErrorHandler(logger *zap.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger,
		includeStack: includeStack,
	}
}

// Handle processes an error and sends the envelope response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()
	stack := ""

	if appErr := GetAppError(err); appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
		message = appErr.Message
		stack = appErr.StackTrace
		h.logError(r, appErr, status)
	} else {
		if message == "" {
			message = "An internal error occurred"
		}
		h.logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
		)
	}

	body := ErrorBody{
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
	}
	if h.includeStack {
		body.Stack = stack
	}

	h.sendJSON(w, status, ErrorResponse{Error: body})
}

// logError logs an application error with appropriate level
func (h *ErrorHandler) logError(r *http.Request, err *AppError, status int) {
	fields := []zap.Field{
		zap.String("error_type", string(err.Type)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	}

	if err.Cause != nil {
		fields = append(fields, zap.Error(err.Cause))
	}

	switch {
	case status >= 500:
		h.logger.Error(err.Message, fields...)
	case status >= 400:
		h.logger.Warn(err.Message, fields...)
	default:
		h.logger.Info(err.Message, fields...)
	}
}

// sendJSON sends a JSON response
func (h *ErrorHandler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode error response",
			zap.Error(err),
			zap.Any("data", data),
		)
	}
}

// Middleware returns an HTTP middleware that converts panics into
// envelope responses. It replaces chi's Recoverer so panic paths share
// the same response shape as every other failure.
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := NewInternalError(fmt.Sprintf("panic: %v", rec))
				h.Handle(w, r, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
