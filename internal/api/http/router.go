package http

import (
	"context"
	"net/http"

	"rentdesk-backoffice/internal/security"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services wires the back-office services into the router
type Services struct {
	Cars          service.CarService
	Customers     service.CustomerService
	ExternalCars  service.ExternalCarService
	Registrations service.VehicleRegistrationService
	Company       service.CompanyService
	Contracts     service.ContractService
	Images        service.ContractImageService
	Planner       service.PlannerService
	Reports       service.ReportService
	Drafts        *service.DraftRegistry
}

// RouterOptions controls cross-cutting router behaviour
type RouterOptions struct {
	// Tokens validates bearer tokens; nil disables authentication
	Tokens             security.TokenManager
	DefaultPageSize    int
	ReminderWindowDays int
	Health             Pinger
}

// NewRouter builds the admin API. Everything under /api/v1 requires a bearer token
// unless opts.Tokens is nil; /healthz is always public.
func NewRouter(svc Services, opts RouterOptions) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestID)
	router.HandleFunc("/healthz", healthHandler(opts.Health)).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	if opts.Tokens != nil {
		api.Use((&authMiddleware{tokens: opts.Tokens}).handle)
	}

	pageSize := opts.DefaultPageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	registerCarRoutes(api, NewCarHandler(svc.Cars, svc.Contracts, pageSize))
	registerCustomerRoutes(api, NewCustomerHandler(svc.Customers, svc.Contracts, pageSize))
	registerExternalCarRoutes(api, NewExternalCarHandler(svc.ExternalCars, pageSize))
	registerRegistrationRoutes(api, NewRegistrationHandler(svc.Registrations, pageSize, opts.ReminderWindowDays))
	registerCompanyRoutes(api, NewCompanyHandler(svc.Company))
	registerContractRoutes(api, NewContractHandler(svc.Contracts, pageSize))
	registerContractImageRoutes(api, NewContractImageHandler(svc.Images))
	registerDraftRoutes(api, NewDraftHandler(svc.Drafts))
	registerPlannerRoutes(api, NewPlannerHandler(svc.Planner))
	registerReportRoutes(api, NewReportHandler(svc.Reports))

	return router
}

func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			if err := p.Ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
