package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"beautybooking/internal/api"
	"beautybooking/internal/auth"
	"beautybooking/internal/repository"
	"beautybooking/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	serviceRepo := repository.NewServiceRepository(database)
	calendarRepo := repository.NewCalendarRepository(database)
	appointmentRepo := repository.NewAppointmentRepository(database)
	jobRepo := repository.NewJobRepository(database)

	sender := service.NewSenderService()
	authSvc := service.NewAuthService(userRepo)
	catalogSvc := service.NewCatalogService(serviceRepo)
	calendarSvc := service.NewCalendarService(calendarRepo)
	bookingSvc := service.NewBookingService(appointmentRepo, serviceRepo, calendarRepo, sender)
	jobSvc := service.NewJobService(jobRepo, sender)

	var geminiClient *service.GeminiClient
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		geminiClient, err = service.NewGeminiClient(context.Background(), apiKey)
		if err != nil {
			log.Printf("Gemini client unavailable: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, AI endpoints disabled")
	}
	aiSvc := service.NewAIService(geminiClient, serviceRepo, appointmentRepo, calendarRepo)

	authHandler := api.NewAuthHandler(authSvc)
	serviceHandler := api.NewServiceHandler(catalogSvc)
	appointmentHandler := api.NewAppointmentHandler(bookingSvc)
	calendarHandler := api.NewCalendarHandler(calendarSvc)
	aiHandler := api.NewAIHandler(aiSvc)

	root := mux.NewRouter()
	root.HandleFunc("/", api.Index).Methods("GET")
	r := root.PathPrefix("/api").Subrouter()
	r.Handle("/health", api.HealthCheck(database)).Methods("GET")

	// Auth
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.Handle("/auth/profile", auth.RequireAuth(http.HandlerFunc(authHandler.GetProfile))).Methods("GET")
	r.Handle("/auth/profile", auth.RequireAuth(http.HandlerFunc(authHandler.UpdateProfile))).Methods("PUT")
	r.Handle("/auth/change-password", auth.RequireAuth(http.HandlerFunc(authHandler.ChangePassword))).Methods("POST")

	// Service catalog
	r.Handle("/services", auth.OptionalAuth(http.HandlerFunc(serviceHandler.ListServices))).Methods("GET")
	r.Handle("/services", auth.RequireAdmin(http.HandlerFunc(serviceHandler.CreateService))).Methods("POST")
	r.HandleFunc("/services/{id}", serviceHandler.GetService).Methods("GET")
	r.Handle("/services/{id}", auth.RequireAdmin(http.HandlerFunc(serviceHandler.UpdateService))).Methods("PUT")
	r.Handle("/services/{id}", auth.RequireAdmin(http.HandlerFunc(serviceHandler.DeleteService))).Methods("DELETE")

	// Appointments. Fixed paths are registered before the {id} routes so
	// "available-slots" and friends never match as an id.
	r.HandleFunc("/appointments/available-slots", appointmentHandler.AvailableSlots).Methods("GET")
	r.Handle("/appointments/admin", auth.RequireAdmin(http.HandlerFunc(appointmentHandler.ListAllAppointments))).Methods("GET")
	r.Handle("/appointments/stats", auth.RequireAdmin(http.HandlerFunc(appointmentHandler.Stats))).Methods("GET")
	r.Handle("/appointments", auth.RequireAuth(http.HandlerFunc(appointmentHandler.CreateAppointment))).Methods("POST")
	r.Handle("/appointments", auth.RequireAuth(http.HandlerFunc(appointmentHandler.ListAppointments))).Methods("GET")
	r.Handle("/appointments/{id}", auth.RequireAuth(http.HandlerFunc(appointmentHandler.GetAppointment))).Methods("GET")
	r.Handle("/appointments/{id}", auth.RequireAuth(http.HandlerFunc(appointmentHandler.UpdateAppointment))).Methods("PUT")
	r.Handle("/appointments/{id}", auth.RequireAdmin(http.HandlerFunc(appointmentHandler.DeleteAppointment))).Methods("DELETE")

	// Opening hours and blocked dates
	r.HandleFunc("/availability", calendarHandler.ListAvailability).Methods("GET")
	r.Handle("/availability", auth.RequireAdmin(http.HandlerFunc(calendarHandler.CreateAvailability))).Methods("POST")
	r.HandleFunc("/availability/{id}", calendarHandler.GetAvailability).Methods("GET")
	r.Handle("/availability/{id}", auth.RequireAdmin(http.HandlerFunc(calendarHandler.UpdateAvailability))).Methods("PUT")
	r.Handle("/availability/{id}", auth.RequireAdmin(http.HandlerFunc(calendarHandler.DeleteAvailability))).Methods("DELETE")
	r.HandleFunc("/blocked-dates", calendarHandler.ListBlockedDates).Methods("GET")
	r.Handle("/blocked-dates", auth.RequireAdmin(http.HandlerFunc(calendarHandler.CreateBlockedDate))).Methods("POST")
	r.HandleFunc("/blocked-dates/{id}", calendarHandler.GetBlockedDate).Methods("GET")
	r.Handle("/blocked-dates/{id}", auth.RequireAdmin(http.HandlerFunc(calendarHandler.UpdateBlockedDate))).Methods("PUT")
	r.Handle("/blocked-dates/{id}", auth.RequireAdmin(http.HandlerFunc(calendarHandler.DeleteBlockedDate))).Methods("DELETE")

	// AI assistant
	r.HandleFunc("/ai/chatbot", aiHandler.Chatbot).Methods("POST")
	r.HandleFunc("/ai/service-suggestions", aiHandler.ServiceSuggestions).Methods("POST")
	r.Handle("/ai/generate-reminder", auth.RequireAuth(http.HandlerFunc(aiHandler.GenerateReminder))).Methods("POST")

	// Background jobs: complete finished appointments hourly, send reminders
	// every morning.
	c := cron.New()
	c.AddFunc("0 * * * *", func() {
		if err := jobSvc.CompletePastAppointments(); err != nil {
			log.Printf("Error completing past appointments: %v", err)
		}
	})
	c.AddFunc("0 9 * * *", func() {
		if err := jobSvc.SendTomorrowReminders(); err != nil {
			log.Printf("Error sending reminders: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	origins := []string{"*"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(root)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
