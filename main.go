package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sujalreset-source/streaming-backend/cache"
	"github.com/sujalreset-source/streaming-backend/config"
	"github.com/sujalreset-source/streaming-backend/gateway"
	"github.com/sujalreset-source/streaming-backend/handler"
	"github.com/sujalreset-source/streaming-backend/logger"
	"github.com/sujalreset-source/streaming-backend/middleware"
	"github.com/sujalreset-source/streaming-backend/pricing"
	"github.com/sujalreset-source/streaming-backend/repository"
	"github.com/sujalreset-source/streaming-backend/service"
	"github.com/sujalreset-source/streaming-backend/storage"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		ServiceName: "streaming-backend",
		LogFilePath: cfg.LogFilePath,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal(logger.EventDBError, "Failed to connect to mongo", logger.Fields("error", err.Error()))
	}
	db := client.Database(cfg.MongoDB)

	redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatal(logger.EventCacheError, "Failed to connect to redis", logger.Fields("error", err.Error()))
	}

	store, err := storage.NewHDFSStore(cfg.HDFSNamenode, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatal(logger.EventStorageError, "Failed to connect to HDFS", logger.Fields("error", err.Error()))
	}

	provisioner, err := gateway.NewMultiProvisioner(gateway.Config{
		StripeKey:      cfg.StripeKey,
		RazorpayKeyID:  cfg.RazorpayKeyID,
		RazorpaySecret: cfg.RazorpaySecret,
		PayPalClientID: cfg.PayPalClientID,
		PayPalSecret:   cfg.PayPalSecret,
		PayPalSandbox:  cfg.PayPalSandbox,
	})
	if err != nil {
		logger.Fatal(logger.EventGatewayError, "Failed to initialise payment gateways", logger.Fields("error", err.Error()))
	}

	converter := pricing.NewStaticConverter(pricing.DefaultRateTable())

	artistRepo := repository.NewArtistRepository(db)
	songRepo := repository.NewSongRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	artistSvc := service.NewArtistService(artistRepo, songRepo, albumRepo, converter, provisioner, redisCache, store, cfg.ArtistImageFolder)
	songSvc := service.NewSongService(songRepo, albumRepo, converter, store)
	albumSvc := service.NewAlbumService(albumRepo, store)
	txSvc := service.NewTransactionService(txRepo)

	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	limiter := middleware.NewRateLimiter(10, 30)

	r := gin.Default()
	r.Use(limiter.Middleware())

	handler.NewArtistHandler(artistSvc).RegisterRoutes(r, auth)
	handler.NewSongHandler(songSvc, albumSvc).RegisterRoutes(r, auth)
	handler.NewPaymentHandler(txSvc).RegisterRoutes(r, auth)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info(logger.EventServiceStartup, "Starting streaming-backend", logger.Fields("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal(logger.EventServiceShutdown, "Server stopped", logger.Fields("error", err.Error()))
	}
}
