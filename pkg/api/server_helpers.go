package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/catalogops/lineage-engine/pkg/catalog"
	"github.com/catalogops/lineage-engine/pkg/logging"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// sanitizeError logs the full error and returns a user-safe message.
// Catalog API errors keep their status context; everything else collapses
// to a generic operation failure.
func (s *Server) sanitizeError(err error, operation string) (int, string) {
	s.logger.Error(operation+" failed", logging.Error(err))

	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return http.StatusNotFound, "asset not found in catalog"
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusBadGateway, "catalog rejected the request"
		default:
			return http.StatusBadGateway, "catalog request failed"
		}
	}
	return http.StatusInternalServerError, operation + " failed"
}
