package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/config"
	"github.com/DanielSantaR/final-web-auth/internal/httpserver"
	"github.com/DanielSantaR/final-web-auth/internal/mail"
	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/internal/tokens"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel)

	codec, err := tokens.NewCodec(cfg.SecretKey, cfg.TokenAlgorithm)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	client := backend.New(cfg.BackendURL, cfg.HTTPTimeout, cfg.HTTPMaxRetries, logger)
	notifier := mail.NewNotifier(
		mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, logger),
		cfg.AppName,
	)
	gate := middleware.NewAuthGate(codec, client)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Config: cfg,
		Gate:   gate,
		Login: &httpserver.LoginHTTP{
			Auth: &service.AuthService{
				Backend:  client,
				Codec:    codec,
				Mail:     notifier,
				Resolver: gate,
				TokenTTL: cfg.AccessTokenTTL,
			},
		},
		Employees:   &httpserver.EmployeeHTTP{Svc: &service.EmployeeService{Backend: client, Mail: notifier}},
		Owners:      &httpserver.OwnerHTTP{Svc: &service.OwnerService{Backend: client, Mail: notifier}},
		Vehicles:    &httpserver.VehicleHTTP{Svc: &service.VehicleService{Backend: client, Mail: notifier}},
		Reparations: &httpserver.ReparationHTTP{Svc: &service.ReparationService{Backend: client, Mail: notifier}},
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
