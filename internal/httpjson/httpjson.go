// Package httpjson writes JSON responses and maps application errors to HTTP
// status codes.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

const MaxBodyBytes = 1 << 20

func Write(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteMessage(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	Write(w, status, dto.ErrorResponse{Error: message}, logger)
}

// WriteError maps typed errors to a status. Persistence and internal failures
// are logged with their cause and answered with their public message only.
func WriteError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		Write(w, http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Details: ve.Details}, logger)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteMessage(w, http.StatusNotFound, nfe.Message, logger)
		return
	}
	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteMessage(w, http.StatusUnauthorized, ue.Message, logger)
		return
	}
	if fe, ok := apperrors.IsForbiddenError(err); ok {
		WriteMessage(w, http.StatusForbidden, fe.Message, logger)
		return
	}
	if pe, ok := apperrors.IsPersistenceError(err); ok {
		logger.Error(pe.Message, zap.Error(pe.Cause))
		WriteMessage(w, http.StatusInternalServerError, pe.Message, logger)
		return
	}
	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error(ie.Message, zap.Error(ie.Cause))
		WriteMessage(w, http.StatusInternalServerError, ie.Message, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteMessage(w, http.StatusInternalServerError, "Server error", logger)
}

// Decode reads a JSON body into dst, capped at MaxBodyBytes. Any decoding
// problem becomes a ValidationError on the body field.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "request body must be valid JSON"
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			msg = "request body must not be empty"
		case errors.As(err, &maxErr):
			msg = "request body too large"
		case errors.As(err, &typeErr):
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return apperrors.NewValidationError("invalid data", apperrors.ValidationDetail{
				Field:   field,
				Message: "must be of type " + typeErr.Type.String(),
			})
		}
		return apperrors.NewValidationError("invalid data", apperrors.ValidationDetail{
			Field:   "body",
			Message: msg,
		})
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("invalid data", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}
	return nil
}
