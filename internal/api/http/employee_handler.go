package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type EmployeeHandler struct {
	employees service.EmployeeService
}

func NewEmployeeHandler(employees service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if !decodeJSON(w, r, &e) {
		return
	}
	if err := h.employees.AddEmployee(r.Context(), &e); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.employees.GetEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var e domain.Employee
	if !decodeJSON(w, r, &e) {
		return
	}
	e.ID = id
	updated, err := h.employees.UpdateEmployee(r.Context(), &e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.employees.DeleteEmployee(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterEmployeeRoutes(router *mux.Router, employees service.EmployeeService) {
	h := NewEmployeeHandler(employees)
	router.HandleFunc("/api/v1/employees", h.List).Methods("GET")
	router.HandleFunc("/api/v1/employees", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/employees/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/employees/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/employees/{id}", h.Delete).Methods("DELETE")
}
