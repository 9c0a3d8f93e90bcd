package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap/zapcore"

	"github.com/FlamesIsCool/tagz-bio/internal/config"
	"github.com/FlamesIsCool/tagz-bio/internal/core"
	"github.com/FlamesIsCool/tagz-bio/internal/db"
	"github.com/FlamesIsCool/tagz-bio/internal/http/handler"
	"github.com/FlamesIsCool/tagz-bio/internal/http/handler/middleware"
	"github.com/FlamesIsCool/tagz-bio/internal/http/payload"
	"github.com/FlamesIsCool/tagz-bio/internal/http/server"
	"github.com/FlamesIsCool/tagz-bio/internal/repository"
	"github.com/FlamesIsCool/tagz-bio/pkg/jwt"
	"github.com/FlamesIsCool/tagz-bio/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("tagz-bio", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewProfileRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// core service
	tagz := core.NewTagz(
		logger,
		repo,
		jwtService,
		time.Duration(config.TokenTTLHours)*time.Hour)

	// handler
	profileHlr := handler.NewProfileHandler(
		logger,
		payload.Decoder{},
		tagz)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Signup, profileHlr.HandleSignup)
	mux.HandleFunc(handler.Login, profileHlr.HandleLogin)
	mux.HandleFunc(handler.Me, profileHlr.HandleMe)
	mux.HandleFunc(handler.UpdateMe, profileHlr.HandleUpdateMe)
	mux.HandleFunc(handler.PublicProfile, profileHlr.HandlePublicProfile)
	mux.HandleFunc(handler.Health, profileHlr.HandleHealth)

	// middleware
	var hdlr http.Handler = middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = cors.New(cors.Options{
		AllowedOrigins:   config.Origins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
