package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeServiceError maps service-layer errors to HTTP status codes. Unknown
// errors become a generic 500 so internals never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	var unavailable *service.CarUnavailableError
	if errors.As(err, &unavailable) {
		writeJSON(w, http.StatusConflict, struct {
			Error              string `json:"error"`
			CarID              int32  `json:"car_id"`
			BlockingContractID int32  `json:"blocking_contract_id"`
		}{unavailable.Error(), unavailable.CarID, unavailable.BlockingContractID})
		return
	}

	switch {
	case errors.Is(err, service.ErrContractNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrCarNotFound),
		errors.Is(err, service.ErrBranchNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrSurchargeNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoCarsRequested),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrInvalidDateRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrBranchNameTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return int32(id), true
}
