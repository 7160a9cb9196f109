package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/database"
	"github.com/xavierca1/leadscore/internal/infra/http/handlers"
	"github.com/xavierca1/leadscore/internal/infra/http/middleware"
	"github.com/xavierca1/leadscore/internal/infra/mail"
	"github.com/xavierca1/leadscore/internal/infra/queue"
	"github.com/xavierca1/leadscore/internal/infra/ws"
	"github.com/xavierca1/leadscore/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	eventRepo := database.NewEventRepository(db)
	ruleRepo := database.NewRuleRepository(db)
	historyRepo := database.NewScoreHistoryRepository(db)

	// 2. Realtime fan-out hub
	hub := ws.NewHub()
	go hub.Run(ctx)

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, hub)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, hub)
	ingestUC := usecase.NewIngestEventUseCase(leadRepo, eventRepo, ruleRepo, historyRepo, hub)

	// Hot-lead alert mail, only when SMTP is configured.
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		ingestUC.EmailService = mail.NewEmailSender(
			host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
		)
		ingestUC.AlertTo = os.Getenv("ALERT_EMAIL")
		ingestUC.AlertThreshold = 80
		if t, err := strconv.Atoi(os.Getenv("ALERT_THRESHOLD")); err == nil {
			ingestUC.AlertThreshold = t
		}
	}

	// AMQP intake + integration feed, only when a broker is configured.
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("AMQP_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		ingestUC.Feed = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, queueIngester{uc: ingestUC})
		go worker.Start(queue.EventQueueName)
	}

	// 4. Seed data
	if err := ruleRepo.SeedDefaults(ctx); err != nil {
		log.Fatalf("failed to seed default rules: %v", err)
	}
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seedDemoLeads(ctx, leadRepo)
	}

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, historyRepo, createLeadUC, deleteLeadUC)
	eventHandler := handlers.NewEventHandler(eventRepo, ingestUC)
	ruleHandler := handlers.NewRuleHandler(ruleRepo)

	var amqpConn *amqp.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/api/leads", leadHandler.List)
	r.Get("/api/leads/{id}", leadHandler.Get)
	r.Post("/api/leads", leadHandler.Create)
	r.Delete("/api/leads/{id}", leadHandler.Delete)

	r.Post("/api/events", eventHandler.Ingest)
	r.Get("/api/events", eventHandler.List)

	r.Get("/api/rules", ruleHandler.List)
	r.Put("/api/rules/{id}", ruleHandler.Update)
	r.Post("/api/rules/reset", ruleHandler.Reset)

	r.Get("/ws", hub.ServeHTTP)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("🔥 leadscore API listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// queueIngester adapts the ingest use case to the AMQP worker contract.
type queueIngester struct {
	uc *usecase.IngestEventUseCase
}

func (q queueIngester) Ingest(ctx context.Context, msg queue.EventMessage) error {
	_, err := q.uc.Execute(ctx, usecase.IngestEventInput{
		EventType: msg.EventType,
		Payload:   msg.Payload,
		LeadID:    msg.LeadID,
		Email:     msg.Email,
	})
	return err
}

func seedDemoLeads(ctx context.Context, repo entity.LeadRepositoryInterface) {
	existing, err := repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return
	}

	demo := []entity.Lead{
		{Name: "Alice Johnson", Email: "alice@example.com", Company: "Tech Corp", Status: entity.StatusEngaged},
		{Name: "Bob Smith", Email: "bob@startup.io", Company: "Startup Inc", Status: entity.StatusNew},
	}
	for i := range demo {
		if err := repo.Create(ctx, &demo[i]); err != nil {
			log.Printf("demo lead seed failed: %v", err)
		}
	}
}
