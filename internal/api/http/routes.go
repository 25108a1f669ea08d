package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/service"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Contracts  service.ContractService
	Cars       service.CarService
	Customers  service.CustomerService
	Branches   service.BranchService
	Employees  service.EmployeeService
	Surcharges service.SurchargeService
}

// NewRouter builds the full API router.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	RegisterContractRoutes(router, svcs.Contracts)
	RegisterCarRoutes(router, svcs.Cars)
	RegisterCustomerRoutes(router, svcs.Customers)
	RegisterBranchRoutes(router, svcs.Branches)
	RegisterEmployeeRoutes(router, svcs.Employees)
	RegisterSurchargeRoutes(router, svcs.Surcharges)

	return router
}
