package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/formdesk/contactapi/modules/contact"
	"github.com/formdesk/contactapi/pkg/config"
	"github.com/formdesk/contactapi/pkg/email"
	"github.com/formdesk/contactapi/pkg/httpserver"
	"github.com/formdesk/contactapi/pkg/logger"
	"github.com/formdesk/contactapi/pkg/mongo"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		mongoCfg mongo.Config
		mailCfg  email.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&mailCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "contactapi"))
	logger.SetAsDefault(log)

	// The store connection is dialed lazily on the first operation; a
	// missing MONGODB_URL surfaces there rather than at startup.
	conn := mongo.NewLazyConn(mongoCfg)
	defer conn.Close(context.Background())

	var sender email.EmailSender
	if mailCfg.Configured() {
		sender = email.MustNewPostmarkClient(mailCfg)
	} else {
		log.Warn("mail credentials not configured, contact notifications disabled")
	}

	repo := contact.NewMongoRepository(conn)
	notifier := contact.NewNotifier(mailCfg, sender, log)
	svc := contact.NewService(repo, notifier, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", httpserver.HealthCheckHandler(log, conn.Healthcheck()))
	r.Mount("/api/contact", svc.Handle())

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}
