package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sejour-backend/internal/security"
	"sejour-backend/internal/service"
)

// Services bundles everything the API surface depends on.
type Services struct {
	Users         service.UserService
	Properties    service.PropertyService
	Bookings      service.BookingService
	Ledger        service.LedgerService
	Conversations service.ConversationService
	Notifications service.NotificationService
	Applications  service.HostApplicationService
	Settings      service.SettingsService
}

func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	auth := NewAuthHandler(svcs.Users)
	properties := NewPropertyHandler(svcs.Properties, svcs.Bookings)
	bookings := NewBookingHandler(svcs.Bookings)
	wallet := NewWalletHandler(svcs.Ledger)
	conversations := NewConversationHandler(svcs.Conversations)
	notifications := NewNotificationHandler(svcs.Notifications)
	applications := NewApplicationHandler(svcs.Applications)
	admin := NewAdminHandler(svcs.Users, svcs.Properties, svcs.Settings)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public surface
	api.HandleFunc("/auth/signup", auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/properties", properties.ListOnline).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}", properties.Get).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}/availability", properties.CheckAvailability).Methods(http.MethodGet)

	// Authenticated surface
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens), MaintenanceGate(svcs.Settings))

	authed.HandleFunc("/me", auth.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/me", auth.UpdateProfile).Methods(http.MethodPatch)
	authed.HandleFunc("/me/verification", auth.SubmitVerification).Methods(http.MethodPost)

	authed.HandleFunc("/properties", properties.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/properties/{id:[0-9]+}", properties.Update).Methods(http.MethodPut)
	authed.HandleFunc("/properties/{id:[0-9]+}/offline", properties.TakeOffline).Methods(http.MethodPost)
	authed.HandleFunc("/properties/{id:[0-9]+}/blocked-dates", properties.ToggleBlockedDate).Methods(http.MethodPost)
	authed.HandleFunc("/my/properties", properties.ListMine).Methods(http.MethodGet)

	authed.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}/status", bookings.Transition).Methods(http.MethodPost)
	authed.HandleFunc("/my/bookings", bookings.ListAsGuest).Methods(http.MethodGet)
	authed.HandleFunc("/my/host-bookings", bookings.ListAsHost).Methods(http.MethodGet)

	authed.HandleFunc("/wallet", wallet.GetSummary).Methods(http.MethodGet)
	authed.HandleFunc("/wallet/transactions", wallet.ListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/wallet/withdrawals", wallet.RequestWithdrawal).Methods(http.MethodPost)

	authed.HandleFunc("/conversations", conversations.List).Methods(http.MethodGet)
	authed.HandleFunc("/conversations/{counterpartID:[0-9]+}", conversations.Thread).Methods(http.MethodGet)
	authed.HandleFunc("/conversations/{counterpartID:[0-9]+}/read", conversations.MarkRead).Methods(http.MethodPost)
	authed.HandleFunc("/messages", conversations.Send).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	authed.HandleFunc("/host-applications", applications.Apply).Methods(http.MethodPost)

	// Admin surface
	adminRoutes := authed.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(RequireAdmin)

	adminRoutes.HandleFunc("/users", admin.ListUsers).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/users/{id:[0-9]+}/status", admin.SetUserStatus).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/users/{id:[0-9]+}/role", admin.SetUserRole).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/users/{id:[0-9]+}/verification", admin.SetVerification).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/properties", admin.ListPropertiesForModeration).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/properties/{id:[0-9]+}/moderate", admin.ModerateProperty).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/host-applications", applications.List).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/host-applications/{id:[0-9]+}/decide", applications.Decide).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/settings", admin.GetSettings).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/settings", admin.UpdateSettings).Methods(http.MethodPut)

	return r
}
