package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"autorent/internal/api"
	"autorent/internal/auth"
	"autorent/internal/repository"
	"autorent/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	ledger := service.NewReservationLedger(reservationRepo)
	bookingSvc := service.NewBookingService(ledger, vehicleRepo, userRepo, sender)
	authSvc := service.NewAuthService(userRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	activitySvc := service.NewActivityService(activityRepo)
	adminSvc := service.NewAdminService(adminRepo, userRepo, vehicleRepo)
	jobSvc := service.NewJobService(jobRepo, sender)

	userHandler := api.NewUserHandler(authSvc)
	vehicleHandler := api.NewVehicleHandler(vehicleSvc, bookingSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	activityHandler := api.NewActivityHandler(activitySvc)
	adminHandler := api.NewAdminHandler(adminSvc, activitySvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/users/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/users/login", userHandler.Login).Methods("POST")
	r.HandleFunc("/api/users/admin/login", userHandler.AdminLogin).Methods("POST")
	r.HandleFunc("/api/vehicles", vehicleHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}", vehicleHandler.GetVehicle).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}/availability", vehicleHandler.GetAvailability).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}/reservations", vehicleHandler.ListVehicleReservations).Methods("GET")
	r.HandleFunc("/api/bookings/preview", bookingHandler.PreviewCost).Methods("POST")

	// Authenticated endpoints
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware)
	authed.HandleFunc("/users/me/vehicles", vehicleHandler.ListOwnVehicles).Methods("GET")
	authed.HandleFunc("/users/{id}/password", userHandler.ChangePassword).Methods("PUT")
	authed.HandleFunc("/users/{id}", userHandler.DeleteUser).Methods("DELETE")
	authed.HandleFunc("/vehicles", vehicleHandler.CreateVehicle).Methods("POST")
	authed.HandleFunc("/vehicles/{id}", vehicleHandler.UpdateVehicle).Methods("PUT")
	authed.HandleFunc("/vehicles/{id}", vehicleHandler.DeleteVehicle).Methods("DELETE")
	authed.HandleFunc("/reservations", bookingHandler.CreateReservation).Methods("POST")
	authed.HandleFunc("/reservations", bookingHandler.ListReservations).Methods("GET")
	authed.HandleFunc("/reservations/{id}", bookingHandler.CancelReservation).Methods("DELETE")
	authed.HandleFunc("/activities", activityHandler.RecordActivity).Methods("POST")
	authed.HandleFunc("/activities", activityHandler.ListActivities).Methods("GET")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware, auth.AdminMiddleware)
	admin.HandleFunc("/stats", adminHandler.GetStats).Methods("GET")
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id}/role", adminHandler.UpdateRole).Methods("PUT")
	admin.HandleFunc("/users/{id}", adminHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/vehicles/{id}/accept", adminHandler.AcceptVehicle).Methods("PUT")
	admin.HandleFunc("/activities", adminHandler.ListActivities).Methods("GET")
	admin.HandleFunc("/activities/{id}", adminHandler.DeleteActivity).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		if err := jobSvc.SendPickupReminders(); err != nil {
			log.Printf("pickup reminder job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{os.Getenv("CORS_ORIGIN")}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
