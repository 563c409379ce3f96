package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		entry.EntityType, entry.EntityID = extractEntityRef(r.URL.Path)

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		// Flag updates change the derived status, so capture the status
		// before the handler runs. The new status comes out of the response.
		if r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/flags") {
			entry.OldStatus = s.lookupStatus(r, entry.EntityType, entry.EntityID)
		}

		rw := newRecordingWriter(w)

		next.ServeHTTP(rw, r)

		entry.StatusCode = rw.Status()
		entry.Response = string(rw.Body())

		if entry.OldStatus != "" {
			var view struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(rw.Body(), &view); err == nil {
				entry.NewStatus = view.Status
			}
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func (s *Server) lookupStatus(r *http.Request, entityType, entityID string) string {
	id, err := strconv.ParseInt(entityID, 10, 64)
	if err != nil {
		return ""
	}

	switch entityType {
	case "exchange":
		if rec, err := s.storage.GetExchange(r.Context(), id); err == nil {
			return string(rec.Status())
		}
	case "return":
		if rec, err := s.storage.GetReturn(r.Context(), id); err == nil {
			return string(rec.Status())
		}
	}
	return ""
}

func extractEntityRef(path string) (entityType, entityID string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return "", ""
	}

	switch parts[0] {
	case "exchanges":
		entityType = "exchange"
	case "returns":
		entityType = "return"
	default:
		return "", ""
	}

	if _, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
		entityID = parts[1]
	}
	return entityType, entityID
}

func getHandlerName(path string, method string) string {
	if strings.HasPrefix(path, "/exchanges") {
		switch {
		case strings.HasSuffix(path, "/stats"):
			return "handleExchangeStats"
		case strings.HasSuffix(path, "/flags"):
			return "handleUpdateExchangeFlags"
		case method == "POST":
			return "handleRegisterExchange"
		case path == "/exchanges":
			return "handleListExchanges"
		case method == "GET":
			return "handleGetExchange"
		}
	} else if strings.HasPrefix(path, "/returns") {
		switch {
		case strings.HasSuffix(path, "/stats"):
			return "handleReturnStats"
		case strings.HasSuffix(path, "/flags"):
			return "handleUpdateReturnFlags"
		case method == "POST":
			return "handleRegisterReturn"
		case path == "/returns":
			return "handleListReturns"
		case method == "GET":
			return "handleGetReturn"
		}
	} else if strings.HasPrefix(path, "/statuses") {
		return "handleStatusVocabulary"
	}

	return "unknown"
}
