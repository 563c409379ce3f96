package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/modaluna/aftersales/internal/domain"
	"gitlab.com/modaluna/aftersales/internal/metrics"
	"gitlab.com/modaluna/aftersales/internal/repository"
	"gitlab.com/modaluna/aftersales/internal/storage"
)

// exchangeView decorates a record with its derived canonical status for
// display. The status is computed here, at the presentation edge, from the
// same derivation the filters use.
type exchangeView struct {
	domain.ExchangeRecord
	Status domain.ExchangeStatus `json:"status"`
}

type returnView struct {
	domain.ReturnRecord
	Status domain.ReturnStatus `json:"status"`
}

func toExchangeViews(records []domain.ExchangeRecord) []exchangeView {
	views := make([]exchangeView, 0, len(records))
	for _, rec := range records {
		views = append(views, exchangeView{ExchangeRecord: rec, Status: rec.Status()})
	}
	return views
}

func toReturnViews(records []domain.ReturnRecord) []returnView {
	views := make([]returnView, 0, len(records))
	for _, rec := range records {
		views = append(views, returnView{ReturnRecord: rec, Status: rec.Status()})
	}
	return views
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", v, time.Local)
}

func (s *Server) handleRegisterExchange(w http.ResponseWriter, r *http.Request) {
	var rec domain.ExchangeRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if rec.OrderRef == "" {
		respondError(w, http.StatusBadRequest, "Missing order_ref")
		return
	}
	if !domain.IsExchangeMotive(rec.Motive) {
		respondError(w, http.StatusBadRequest, "Unknown motive: "+rec.Motive)
		return
	}

	id, err := s.storage.RegisterExchange(r.Context(), rec)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("register_exchange").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to register exchange")
		return
	}

	metrics.ExchangesRegisteredTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Exchange registered successfully",
		"id":      id,
	})
}

func (s *Server) handleGetExchange(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid exchange ID")
		return
	}

	if s.exchangeCache != nil {
		if rec, found := s.exchangeCache.Get(id); found {
			respondJSON(w, http.StatusOK, exchangeView{ExchangeRecord: *rec, Status: rec.Status()})
			return
		}
	}

	rec, err := s.storage.GetExchange(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Exchange not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to get exchange")
		return
	}

	respondJSON(w, http.StatusOK, exchangeView{ExchangeRecord: *rec, Status: rec.Status()})
}

func (s *Server) handleListExchanges(w http.ResponseWriter, r *http.Request) {
	filter, err := exchangeFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.storage.ListExchanges(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list exchanges")
		return
	}

	respondJSON(w, http.StatusOK, toExchangeViews(records))
}

func (s *Server) handleUpdateExchangeFlags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid exchange ID")
		return
	}

	var update storage.ExchangeFlagUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username, _, _ := r.BasicAuth()
	rec, err := s.storage.SetExchangeFlags(r.Context(), id, update, username)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Exchange not found")
			return
		}
		metrics.OperationErrorsTotal.WithLabelValues("update_exchange_flags").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to update exchange flags")
		return
	}

	if s.exchangeCache != nil {
		s.exchangeCache.Set(rec)
	}

	metrics.FlagUpdatesTotal.WithLabelValues("exchange").Inc()
	respondJSON(w, http.StatusOK, exchangeView{ExchangeRecord: *rec, Status: rec.Status()})
}

func (s *Server) handleExchangeStats(w http.ResponseWriter, r *http.Request) {
	filter, err := exchangeFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := s.storage.GetExchangeStats(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute exchange stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRegisterReturn(w http.ResponseWriter, r *http.Request) {
	var rec domain.ReturnRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if rec.OrderRef == "" {
		respondError(w, http.StatusBadRequest, "Missing order_ref")
		return
	}
	if !domain.IsReturnMotive(rec.Motive) {
		respondError(w, http.StatusBadRequest, "Unknown motive: "+rec.Motive)
		return
	}

	id, err := s.storage.RegisterReturn(r.Context(), rec)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("register_return").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to register return")
		return
	}

	metrics.ReturnsRegisteredTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Return registered successfully",
		"id":      id,
	})
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	rec, err := s.storage.GetReturn(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Return not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to get return")
		return
	}

	respondJSON(w, http.StatusOK, returnView{ReturnRecord: *rec, Status: rec.Status()})
}

func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	filter, err := returnFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.storage.ListReturns(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list returns")
		return
	}

	respondJSON(w, http.StatusOK, toReturnViews(records))
}

func (s *Server) handleUpdateReturnFlags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	var update storage.ReturnFlagUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username, _, _ := r.BasicAuth()
	rec, err := s.storage.SetReturnFlags(r.Context(), id, update, username)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Return not found")
			return
		}
		metrics.OperationErrorsTotal.WithLabelValues("update_return_flags").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to update return flags")
		return
	}

	metrics.FlagUpdatesTotal.WithLabelValues("return").Inc()
	respondJSON(w, http.StatusOK, returnView{ReturnRecord: *rec, Status: rec.Status()})
}

func (s *Server) handleReturnStats(w http.ResponseWriter, r *http.Request) {
	filter, err := returnFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := s.storage.GetReturnStats(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute return stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// handleStatusVocabulary exposes the closed status and motive key lists so
// filter UIs can build their option lists without hardcoding them.
func (s *Server) handleStatusVocabulary(w http.ResponseWriter, r *http.Request) {
	entity := mux.Vars(r)["entity"]

	switch entity {
	case "returns":
		statuses := []string{domain.StatusAll}
		for _, st := range domain.ReturnStatuses {
			statuses = append(statuses, string(st))
		}
		statuses = append(statuses, domain.StatusCompleted)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"statuses": statuses,
			"motives":  domain.ReturnMotives,
		})
	case "exchanges":
		statuses := []string{domain.StatusAll}
		for _, st := range domain.ExchangeStatuses {
			statuses = append(statuses, string(st))
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"statuses": statuses,
			"motives":  domain.ExchangeMotives,
		})
	default:
		respondError(w, http.StatusNotFound, "Unknown entity: "+entity)
	}
}

func returnFilterFromQuery(r *http.Request) (domain.ReturnFilter, error) {
	q := r.URL.Query()

	dateFrom, err := parseDateParam(r, "date_from")
	if err != nil {
		return domain.ReturnFilter{}, errors.New("Invalid date_from. Use YYYY-MM-DD")
	}
	dateTo, err := parseDateParam(r, "date_to")
	if err != nil {
		return domain.ReturnFilter{}, errors.New("Invalid date_to. Use YYYY-MM-DD")
	}

	return domain.ReturnFilter{
		Status:      q.Get("status"),
		Motive:      q.Get("motive"),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		OrderRef:    q.Get("order_ref"),
		Phone:       q.Get("phone"),
		Model:       q.Get("model"),
		Responsible: q.Get("responsible"),
	}, nil
}

func exchangeFilterFromQuery(r *http.Request) (domain.ExchangeFilter, error) {
	q := r.URL.Query()

	dateFrom, err := parseDateParam(r, "date_from")
	if err != nil {
		return domain.ExchangeFilter{}, errors.New("Invalid date_from. Use YYYY-MM-DD")
	}
	dateTo, err := parseDateParam(r, "date_to")
	if err != nil {
		return domain.ExchangeFilter{}, errors.New("Invalid date_to. Use YYYY-MM-DD")
	}

	return domain.ExchangeFilter{
		Status:       q.Get("status"),
		Motive:       q.Get("motive"),
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		OrderRef:     q.Get("order_ref"),
		Phone:        q.Get("phone"),
		CustomerName: q.Get("customer_name"),
		Model:        q.Get("model"),
	}, nil
}
