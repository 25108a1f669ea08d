package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type BranchHandler struct {
	branches service.BranchService
}

func NewBranchHandler(branches service.BranchService) *BranchHandler {
	return &BranchHandler{branches: branches}
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.ListBranches(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b domain.Branch
	if !decodeJSON(w, r, &b) {
		return
	}
	if err := h.branches.AddBranch(r.Context(), &b); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.branches.GetBranch(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var b domain.Branch
	if !decodeJSON(w, r, &b) {
		return
	}
	b.ID = id
	updated, err := h.branches.UpdateBranch(r.Context(), &b)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.branches.DeleteBranch(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterBranchRoutes(router *mux.Router, branches service.BranchService) {
	h := NewBranchHandler(branches)
	router.HandleFunc("/api/v1/branches", h.List).Methods("GET")
	router.HandleFunc("/api/v1/branches", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/branches/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/branches/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/branches/{id}", h.Delete).Methods("DELETE")
}
