package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"hirepulse/internal/app"
	"hirepulse/internal/config"
	"hirepulse/internal/database"
	apphttp "hirepulse/internal/http"
	"hirepulse/internal/http/handlers"
	"hirepulse/internal/http/metrics"
	httpmw "hirepulse/internal/http/middleware"
	"hirepulse/internal/http/proxy"
	"hirepulse/internal/http/response"
	"hirepulse/internal/integration/aiservice"
	"hirepulse/internal/observability"
	"hirepulse/internal/repository/postgres"
	"hirepulse/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	aiClient := aiservice.NewClient(cfg.AIServiceURL, &http.Client{Timeout: 60 * time.Second})

	jobService := app.NewJobService(jobRepo, applicationRepo)
	interviewService := app.NewInterviewService(interviewRepo, aiClient)
	userService := app.NewUserService(userRepo)

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis rate limiter", "addr", cfg.RedisAddr)
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	jobHandler := handlers.NewJobHandler(jobService, limiter)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	userHandler := handlers.NewUserHandler(userService)
	authMiddleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	aiTarget, err := url.Parse(cfg.AIServiceURL)
	if err != nil {
		log.Fatalf("invalid AI_SERVICE_URL: %v", err)
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:       jobHandler,
		InterviewHandler: interviewHandler,
		UserHandler:      userHandler,
		MetricsHandler:   handlers.NewMetricsHandler(collector),
		AuthMiddleware:   authMiddleware,
		Metrics:          collector,
		Logger:           logger,
		AIProxy:          proxy.New(aiTarget, "/api/ai", "/api"),
		CORSOrigin:       cfg.CORSOrigin,
		RequestTimeout:   cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
