package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type CarHandler struct {
	cars service.CarService
}

func NewCarHandler(cars service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCars(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if !decodeJSON(w, r, &car) {
		return
	}
	if err := h.cars.AddCar(r.Context(), &car); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	car, err := h.cars.GetCar(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var car domain.Car
	if !decodeJSON(w, r, &car) {
		return
	}
	car.ID = id
	updated, err := h.cars.UpdateCar(r.Context(), &car)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.cars.DeleteCar(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterCarRoutes(router *mux.Router, cars service.CarService) {
	h := NewCarHandler(cars)
	router.HandleFunc("/api/v1/cars", h.List).Methods("GET")
	router.HandleFunc("/api/v1/cars", h.Create).Methods("POST")
	router.HandleFunc("/api/v1/cars/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/cars/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/v1/cars/{id}", h.Delete).Methods("DELETE")
}
