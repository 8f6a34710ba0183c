package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/container"
	"github.com/pebbleway/pebbleway-api/internal/router"
)

func main() {
	port := flag.String("port", "8080", "HTTP port for local runs")
	dsn := flag.String("dsn", "", "postgres URL or sqlite file path, overrides DATABASE_DSN")
	flag.Parse()

	if *dsn != "" {
		os.Setenv("DATABASE_DSN", *dsn)
	}

	c := container.New()

	handler := router.New(router.RouterConfig{
		AuthHandler:     c.AuthHandler,
		GoalHandler:     c.GoalContainer.Handler,
		JournalHandler:  c.JournalContainer.Handler,
		SettingsHandler: c.SettingsContainer.Handler,
	})

	log := config.Logger()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	log.Infof("Listening on :%s", *port)
	if err := http.ListenAndServe(":"+*port, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
