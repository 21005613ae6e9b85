package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/amalpanikulangara/arreWhatsapp/config"
	chathttp "github.com/amalpanikulangara/arreWhatsapp/internal/chat/delivery/http"
	chatmodels "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
	chatrepo "github.com/amalpanikulangara/arreWhatsapp/internal/chat/repository"
	chatusecase "github.com/amalpanikulangara/arreWhatsapp/internal/chat/usecase"
	grouphttp "github.com/amalpanikulangara/arreWhatsapp/internal/group/delivery/http"
	groupmodels "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	grouprepo "github.com/amalpanikulangara/arreWhatsapp/internal/group/repository"
	groupusecase "github.com/amalpanikulangara/arreWhatsapp/internal/group/usecase"
	"github.com/amalpanikulangara/arreWhatsapp/internal/reaper"
	userhttp "github.com/amalpanikulangara/arreWhatsapp/internal/user/delivery/http"
	usermodels "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
	userrepo "github.com/amalpanikulangara/arreWhatsapp/internal/user/repository"
	userusecase "github.com/amalpanikulangara/arreWhatsapp/internal/user/usecase"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		appLogger.Errorf("database unreachable: %v", err)
		return
	}
	if err := ensureSchema(ctx, db); err != nil {
		appLogger.Errorf("schema setup failed: %v", err)
		return
	}

	userRepo := userrepo.NewUserRepository(db, appLogger)
	groupRepo := grouprepo.NewGroupRepository(db, appLogger)
	messageRepo := chatrepo.NewMessageRepository(db, appLogger)

	userUC := userusecase.NewUserUsecase(userRepo, appLogger, cfg)
	groupUC := groupusecase.NewGroupUsecase(groupRepo, appLogger)
	chatUC := chatusecase.NewChatUsecase(messageRepo, appLogger)

	sweeper := reaper.New(messageRepo, cfg, appLogger)
	go sweeper.Run(ctx)

	if !cfg.LoggerMode.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	userhttp.MapUserRoutes(router, userhttp.NewUserHandler(userUC, appLogger))
	grouphttp.MapGroupRoutes(router, grouphttp.NewGroupHandler(groupUC, appLogger))
	chathttp.MapChatRoutes(router, chathttp.NewChatHandler(chatUC, appLogger))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}

// ensureSchema creates the durable collections the core needs: users keyed
// by id, groups keyed by name, messages indexed by (group, pos), plus the
// reply links, reactions, receipts and derived attachment index.
func ensureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*usermodels.User)(nil),
		(*groupmodels.Group)(nil),
		(*groupmodels.GroupMember)(nil),
		(*chatmodels.Message)(nil),
		(*chatmodels.MessageReply)(nil),
		(*chatmodels.Reaction)(nil),
		(*chatmodels.ViewReceipt)(nil),
		(*chatmodels.Attachment)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	_, err := db.NewCreateIndex().
		Model((*chatmodels.Message)(nil)).
		Index("messages_group_pos_idx").
		Unique().
		Column("group_id", "pos").
		IfNotExists().
		Exec(ctx)
	return err
}
