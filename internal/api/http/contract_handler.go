package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/service"
)

// ContractHandler exposes the contract lifecycle over REST.
type ContractHandler struct {
	contracts service.ContractService
}

func NewContractHandler(contracts service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contracts.ListContracts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateContractInput
	if !decodeJSON(w, r, &input) {
		return
	}
	c, err := h.contracts.CreateContract(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.contracts.GetContract(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.UpdateContractInput
	if !decodeJSON(w, r, &input) {
		return
	}
	c, err := h.contracts.UpdateContract(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.contracts.DeleteContract(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ContractHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.PaymentInput
	if !decodeJSON(w, r, &input) {
		return
	}
	p, err := h.contracts.AddPayment(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ContractHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.DeliveryInput
	if !decodeJSON(w, r, &input) {
		return
	}
	rec, err := h.contracts.CreateDelivery(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *ContractHandler) CreateReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.ReturnInput
	if !decodeJSON(w, r, &input) {
		return
	}
	rec, err := h.contracts.CreateReturn(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// RegisterContractRoutes registers the contract lifecycle endpoints.
func RegisterContractRoutes(router *mux.Router, contracts service.ContractService) {
	h := NewContractHandler(contracts)
	router.HandleFunc("/api/v1/contracts", h.List).Methods("GET")
	router.HandleFunc("/api/v1/contracts", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/contracts/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/contracts/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/contracts/{id}", h.Delete).Methods("DELETE")
	router.HandleFunc("/api/v1/contracts/{id}/payments", h.AddPayment).Methods("POST")
	router.HandleFunc("/api/v1/contracts/{id}/delivery", h.CreateDelivery).Methods("POST")
	router.HandleFunc("/api/v1/contracts/{id}/return", h.CreateReturn).Methods("POST")
}
