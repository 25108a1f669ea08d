package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type SurchargeHandler struct {
	surcharges service.SurchargeService
}

func NewSurchargeHandler(surcharges service.SurchargeService) *SurchargeHandler {
	return &SurchargeHandler{surcharges: surcharges}
}

func (h *SurchargeHandler) List(w http.ResponseWriter, r *http.Request) {
	surcharges, err := h.surcharges.ListSurcharges(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surcharges)
}

func (h *SurchargeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sc domain.Surcharge
	if !decodeJSON(w, r, &sc) {
		return
	}
	if err := h.surcharges.AddSurcharge(r.Context(), &sc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (h *SurchargeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sc, err := h.surcharges.GetSurcharge(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *SurchargeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var sc domain.Surcharge
	if !decodeJSON(w, r, &sc) {
		return
	}
	sc.ID = id
	updated, err := h.surcharges.UpdateSurcharge(r.Context(), &sc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *SurchargeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.surcharges.DeleteSurcharge(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterSurchargeRoutes(router *mux.Router, surcharges service.SurchargeService) {
	h := NewSurchargeHandler(surcharges)
	router.HandleFunc("/api/v1/surcharges", h.List).Methods("GET")
	router.HandleFunc("/api/v1/surcharges", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/surcharges/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/surcharges/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/surcharges/{id}", h.Delete).Methods("DELETE")
}
