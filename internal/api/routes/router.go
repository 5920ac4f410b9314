package routes

import (
	"net/http"

	"github.com/dentalflow/backend/internal/api/handlers"
	"github.com/dentalflow/backend/internal/api/middleware"
	"github.com/dentalflow/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	patientHandler     *handlers.PatientHandler
	treatmentHandler   *handlers.TreatmentHandler
	paymentHandler     *handlers.PaymentHandler
	visitHandler       *handlers.VisitHandler
	appointmentHandler *handlers.AppointmentHandler
	dashboardHandler   *handlers.DashboardHandler
	settingsHandler    *handlers.SettingsHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	patientHandler *handlers.PatientHandler,
	treatmentHandler *handlers.TreatmentHandler,
	paymentHandler *handlers.PaymentHandler,
	visitHandler *handlers.VisitHandler,
	appointmentHandler *handlers.AppointmentHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		treatmentHandler:   treatmentHandler,
		paymentHandler:     paymentHandler,
		visitHandler:       visitHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		settingsHandler:    settingsHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)

	// User endpoints
	r.mux.HandleFunc("GET /api/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("POST /api/users", r.userHandler.CreateUser)
	r.mux.HandleFunc("PUT /api/users/{id}", r.userHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /api/users/{id}", r.userHandler.DeleteUser)

	// Reminder endpoints
	r.mux.HandleFunc("GET /api/reminders", r.userHandler.ListReminders)
	r.mux.HandleFunc("POST /api/reminders", r.userHandler.CreateReminder)
	r.mux.HandleFunc("POST /api/reminders/{id}/toggle", r.userHandler.ToggleReminder)
	r.mux.HandleFunc("DELETE /api/reminders/{id}", r.userHandler.DeleteReminder)

	// Patient endpoints
	r.mux.HandleFunc("GET /api/patients", r.patientHandler.ListPatients)
	r.mux.HandleFunc("POST /api/patients", r.patientHandler.CreatePatient)
	r.mux.HandleFunc("GET /api/patients/{id}", r.patientHandler.GetPatient)
	r.mux.HandleFunc("PATCH /api/patients/{id}", r.patientHandler.UpdatePatient)
	r.mux.HandleFunc("GET /api/patients/{id}/balance", r.patientHandler.GetPatientBalance)
	r.mux.HandleFunc("GET /api/patients/{id}/treatments", r.patientHandler.GetPatientTreatments)
	r.mux.HandleFunc("GET /api/patients/{id}/payments", r.patientHandler.GetPatientPayments)

	// Treatment endpoints
	r.mux.HandleFunc("GET /api/treatments", r.treatmentHandler.ListTreatments)
	r.mux.HandleFunc("POST /api/treatments", r.treatmentHandler.CreateTreatment)

	// Payment endpoints
	r.mux.HandleFunc("GET /api/payments", r.paymentHandler.ListPayments)
	r.mux.HandleFunc("POST /api/payments", r.paymentHandler.CreatePayment)
	r.mux.HandleFunc("POST /api/payments/{id}/cancel", r.paymentHandler.CancelPayment)

	// Integral visit endpoint
	r.mux.HandleFunc("POST /api/visits", r.visitHandler.RecordVisit)

	// Appointment endpoints
	r.mux.HandleFunc("GET /api/appointments", r.appointmentHandler.ListAppointments)
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.BookAppointment)

	// Dashboard endpoints
	r.mux.HandleFunc("GET /api/dashboard/stats", r.dashboardHandler.GetStats)
	r.mux.HandleFunc("GET /api/dashboard/debtors", r.dashboardHandler.GetDebtors)
	r.mux.HandleFunc("GET /api/dashboard/recent-patients", r.dashboardHandler.GetRecentPatients)
	r.mux.HandleFunc("GET /api/dashboard/income", r.dashboardHandler.GetIncome)

	// Settings endpoints
	r.mux.HandleFunc("GET /api/settings/procedures", r.settingsHandler.ListProcedures)
	r.mux.HandleFunc("POST /api/settings/procedures", r.settingsHandler.AddProcedure)
	r.mux.HandleFunc("DELETE /api/settings/procedures/{id}", r.settingsHandler.RemoveProcedure)
	r.mux.HandleFunc("GET /api/settings/reasons", r.settingsHandler.ListReasons)
	r.mux.HandleFunc("POST /api/settings/reasons", r.settingsHandler.AddReason)
	r.mux.HandleFunc("DELETE /api/settings/reasons/{reason}", r.settingsHandler.RemoveReason)
	r.mux.HandleFunc("GET /api/settings/financial-goal", r.settingsHandler.GetFinancialGoal)
	r.mux.HandleFunc("PUT /api/settings/financial-goal", r.settingsHandler.SetFinancialGoal)
	r.mux.HandleFunc("GET /api/settings/logo", r.settingsHandler.GetLogo)
	r.mux.HandleFunc("PUT /api/settings/logo", r.settingsHandler.SetLogo)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
