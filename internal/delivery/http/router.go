package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"happenly/internal/delivery/http/controllers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/domain"
)

// Controllers bundles the route handlers wired by NewRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Event     *controllers.EventController
	Guest     *controllers.GuestController
	Vendor    *controllers.VendorController
	Task      *controllers.TaskController
	Dashboard *controllers.DashboardController
	Calendar  *controllers.CalendarController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.CreateEvent))
	mux.HandleFunc("GET /events", auth(c.Event.ListEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(c.Event.GetEvent))
	mux.HandleFunc("PATCH /events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.DeleteEvent))

	// Guests
	mux.HandleFunc("POST /events/{eventID}/guests", auth(c.Guest.AddGuest))
	mux.HandleFunc("GET /events/{eventID}/guests", auth(c.Guest.ListGuests))
	mux.HandleFunc("PATCH /events/{eventID}/guests/{guestID}", auth(c.Guest.UpdateGuest))
	mux.HandleFunc("DELETE /events/{eventID}/guests/{guestID}", auth(c.Guest.RemoveGuest))

	// Vendors
	mux.HandleFunc("POST /events/{eventID}/vendors", auth(c.Vendor.AddVendor))
	mux.HandleFunc("GET /events/{eventID}/vendors", auth(c.Vendor.ListVendors))
	mux.HandleFunc("PATCH /events/{eventID}/vendors/{vendorID}", auth(c.Vendor.UpdateVendor))
	mux.HandleFunc("DELETE /events/{eventID}/vendors/{vendorID}", auth(c.Vendor.RemoveVendor))

	// Tasks
	mux.HandleFunc("POST /events/{eventID}/tasks", auth(c.Task.AddTask))
	mux.HandleFunc("GET /events/{eventID}/tasks", auth(c.Task.ListTasks))
	mux.HandleFunc("PATCH /events/{eventID}/tasks/{taskID}", auth(c.Task.UpdateTask))
	mux.HandleFunc("DELETE /events/{eventID}/tasks/{taskID}", auth(c.Task.RemoveTask))

	// Dashboard and calendar
	mux.HandleFunc("GET /events/{eventID}/dashboard", auth(c.Dashboard.GetEventDashboard))
	mux.HandleFunc("GET /calendar", auth(c.Calendar.ListTimeBlocks))
	mux.HandleFunc("GET /calendar/ics", auth(c.Calendar.ExportICS))

	// Operational
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
