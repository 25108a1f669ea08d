package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cust domain.Customer
	if !decodeJSON(w, r, &cust) {
		return
	}
	if err := h.customers.AddCustomer(r.Context(), &cust); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cust)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cust, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cust domain.Customer
	if !decodeJSON(w, r, &cust) {
		return
	}
	cust.ID = id
	updated, err := h.customers.UpdateCustomer(r.Context(), &cust)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterCustomerRoutes(router *mux.Router, customers service.CustomerService) {
	h := NewCustomerHandler(customers)
	router.HandleFunc("/api/v1/customers", h.List).Methods("GET")
	router.HandleFunc("/api/v1/customers", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/customers/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/customers/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/customers/{id}", h.Delete).Methods("DELETE")
}
