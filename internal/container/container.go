package container

import (
	"context"
	"log"
	"os"

	"github.com/pebbleway/pebbleway-api/internal/auth"
	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/email"
	"github.com/pebbleway/pebbleway-api/internal/goal"
	"github.com/pebbleway/pebbleway-api/internal/identity"
	"github.com/pebbleway/pebbleway-api/internal/journal"
	"github.com/pebbleway/pebbleway-api/internal/settings"
	"github.com/pebbleway/pebbleway-api/internal/store"
)

type Container struct {
	Store             store.Store
	AuthHandler       *auth.Handler
	GoalContainer     *goal.Container
	JournalContainer  *journal.Container
	SettingsContainer *settings.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	st, err := store.NewGormStore(config.DB)
	if err != nil {
		log.Fatalf("failed to prepare blob store: %v", err)
	}

	identityClient := identity.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
	mailer := email.NewMailer(os.Getenv("EMAIL_FN_URL"), os.Getenv("EMAIL_FN_KEY"))

	return &Container{
		Store:             st,
		AuthHandler:       auth.NewHandler(identityClient, mailer),
		GoalContainer:     goal.NewContainer(st),
		JournalContainer:  journal.NewContainer(st),
		SettingsContainer: settings.NewContainer(st),
	}
}
