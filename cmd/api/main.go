package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "declatogo-backend/internal/adapter/http"
	mw "declatogo-backend/internal/adapter/middleware"
	"declatogo-backend/internal/adapter/queue"
	"declatogo-backend/internal/adapter/repository/mysql"
	"declatogo-backend/internal/config"
	"declatogo-backend/internal/infrastructure/cache"
	"declatogo-backend/internal/infrastructure/db"
	declUsecase "declatogo-backend/internal/usecase/declaration"
	matchUsecase "declatogo-backend/internal/usecase/matching"
	notifUsecase "declatogo-backend/internal/usecase/notification"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	declRepo := mysql.NewDeclarationRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	catRepo := mysql.NewCategoryRepository(gdb)
	owners := mysql.NewOwnerDirectory(gdb)
	guow := mysql.NewGormUoW(gdb)

	if err := catRepo.SeedIfEmpty(context.Background()); err != nil {
		log.Printf("categories: seed skipped: %v", err)
	}

	// usecases
	enqueuer := queue.NewEmailEnqueuer(cfg.RedisAddr, cfg.RedisDB)
	defer enqueuer.Close()

	dispatcher := notifUsecase.NewDispatcher(notifRepo, owners, enqueuer)
	matcher := matchUsecase.NewUsecase(declRepo, guow, dispatcher)
	declUC := declUsecase.NewUsecase(declRepo, catRepo, guow, matcher, dispatcher)
	notifUC := notifUsecase.NewUsecase(notifRepo)

	// handlers
	h := httpadp.NewHandler()
	dh := httpadp.NewDeclarationHandler(declUC)
	nh := httpadp.NewNotificationHandler(notifUC)
	ch := httpadp.NewCategoryHandler(catRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idem := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/categories", ch.List)

	e.POST("/declarations", dh.Create, idem)
	e.GET("/declarations", dh.List)
	e.GET("/declarations/mine", dh.Mine)
	e.GET("/declarations/:declaration_id", dh.Get)
	e.POST("/declarations/search", dh.Search)
	e.PATCH("/declarations/:declaration_id/status", dh.ChangeStatus, idem)
	e.DELETE("/declarations/:declaration_id", dh.Delete)
	e.GET("/stats", dh.Stats)

	e.GET("/notifications", nh.List)
	e.GET("/notifications/unread", nh.Unread)
	e.POST("/notifications/:notification_id/read", nh.MarkRead)
	e.POST("/notifications/read-all", nh.MarkAllRead)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
