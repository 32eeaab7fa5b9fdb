package main

import (
	"context"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/admin"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/auth"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/config"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/db"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/events"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/kvstore"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/logger"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/payment"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/router"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/session"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/storage"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/stores"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// ───────────────────────── PERSISTENCE ─────────────────────────
	var (
		store    kvstore.Store
		userRepo auth.UserRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pool.Close()

		store = kvstore.NewPostgresStore(pool)
		userRepo = auth.NewPostgresUserRepository(pool)
		zlog.Info("connected to postgres")
	} else {
		store = kvstore.NewMemoryStore()
		userRepo = auth.NewInMemoryUserRepository()
		zlog.Warn("DATABASE_URL not set, running on in-memory storage")
	}

	// ───────────────────────── OBJECT STORAGE ─────────────────────────
	var imageStorage catalog.Storage
	if cfg.R2Configured() {
		r2, err := storage.NewR2Client(ctx, storage.Options{
			Endpoint:      cfg.R2Endpoint,
			AccessKey:     cfg.R2AccessKey,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2BucketName,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
		if err != nil {
			zlog.Fatal("r2 init failed", zap.Error(err))
		}
		imageStorage = r2
	}

	// ───────────────────────── EVENTS ─────────────────────────
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		kp := events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		zlog.Info("kafka publisher enabled", zap.String("topic", cfg.KafkaTopic))
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	tokens := auth.NewTokens(cfg.JWTSecret)
	catalogService := catalog.NewService(
		catalog.NewInMemoryRepository(catalog.DefaultProducts()),
		imageStorage,
	)
	sessions := session.NewManager(store, cart.UUIDGenerator{}, zlog)
	authorizer := payment.NewAttestationAuthorizer(cfg.AttestationSecret)
	salesService := admin.NewService(store)
	shopService := stores.NewService(stores.DefaultShops())

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Auth:       authService,
		Tokens:     tokens,
		Catalog:    catalogService,
		Sessions:   sessions,
		Authorizer: authorizer,
		Publisher:  publisher,
		Sales:      salesService,
		Shops:      shopService,
		Logger:     zlog,
	})

	// ───────────────────────── START ─────────────────────────
	zlog.Info("api listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
