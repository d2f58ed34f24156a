package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joglo66/fleet-backend/internal/auth"
	"github.com/joglo66/fleet-backend/internal/config"
	"github.com/joglo66/fleet-backend/internal/dashboard"
	"github.com/joglo66/fleet-backend/internal/database"
	"github.com/joglo66/fleet-backend/internal/fleet"
	"github.com/joglo66/fleet-backend/internal/models"
	"github.com/joglo66/fleet-backend/internal/sessions"
	"github.com/joglo66/fleet-backend/internal/storage"
	"github.com/joglo66/fleet-backend/internal/store"
	"github.com/joglo66/fleet-backend/internal/uploads"
	"github.com/joglo66/fleet-backend/pkg/logger"
	"github.com/joglo66/fleet-backend/pkg/metrics"
	"github.com/joglo66/fleet-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required")
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware(cfg.CORS.Origins))
	r.Use(middleware.RequestMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	ctx := context.Background()
	client := connectMongo(ctx, cfg)
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	users := store.NewMongo[models.User](db.Collection("users"), "user_id")

	var sessRepo sessions.Repository = sessions.NewMongoRepository(db.Collection("user_sessions"))
	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis unreachable (%s:%s), sessions stay in Mongo: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			sessRepo = sessions.NewRedisRepository(rc, "session:")
			logger.Infof("using Redis for session storage")
		}
	}

	exchange := auth.NewExchangeClient(cfg.Auth.UpstreamURL, cfg.Auth.UpstreamTimeout)
	authn := auth.NewAuthenticator(sessRepo, users, exchange, cfg.Auth.SessionTTL)

	r.GET("/ready", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Fleet Management API v1.0"})
	})

	auth.NewHandler(authn).Register(api)

	protected := api.Group("", auth.RequireAuth(authn))

	fleetHandler := fleet.NewMongoHandler(db)
	fleetHandler.Register(protected)

	dashboard.NewHandler(dashboard.NewService(fleetHandler)).Register(protected)

	if cfg.MinIO.Endpoint != "" {
		st, err := storage.New(cfg.MinIO)
		if err != nil {
			logger.Warnf("object storage unavailable, uploads disabled: %v", err)
		} else {
			uploads.NewHandler(st).Register(protected)
			logger.Infof("uploads enabled (bucket %s)", cfg.MinIO.Bucket)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("starting fleet backend on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// connectMongo retries with backoff to tolerate startup races against the
// database container.
func connectMongo(ctx context.Context, cfg *config.Config) *mongo.Client {
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			return client
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	return nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		// AllowAllOrigins cannot be combined with credentials; mirror the
		// wildcard through the origin func instead.
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}
