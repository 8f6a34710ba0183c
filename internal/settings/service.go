package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

var (
	ErrInvalidTheme     = errors.New("unknown theme")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
)

type Service interface {
	Profile(ctx context.Context) Profile
	UpdateProfile(ctx context.Context, p Profile) (*Profile, error)
	Notifications(ctx context.Context) NotificationPrefs
	UpdateNotifications(ctx context.Context, n NotificationPrefs) (*NotificationPrefs, error)
	Theme(ctx context.Context) Theme
	UpdateTheme(ctx context.Context, raw string) (Theme, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Profile(ctx context.Context) Profile {
	return s.repo.Profile()
}

func (s *service) UpdateProfile(ctx context.Context, p Profile) (*Profile, error) {
	log := config.WithContext(ctx)

	p.Username = strings.TrimSpace(p.Username)
	if len(p.Username) < 3 {
		return nil, ErrUsernameTooShort
	}

	if err := s.repo.SaveProfile(p); err != nil {
		log.WithError(err).Error("Failed to save profile")
		return nil, err
	}
	log.Info("Profile updated")
	return &p, nil
}

func (s *service) Notifications(ctx context.Context) NotificationPrefs {
	return s.repo.Notifications()
}

func (s *service) UpdateNotifications(ctx context.Context, n NotificationPrefs) (*NotificationPrefs, error) {
	log := config.WithContext(ctx)

	if err := s.repo.SaveNotifications(n); err != nil {
		log.WithError(err).Error("Failed to save notification preferences")
		return nil, err
	}
	log.Info("Notification preferences updated")
	return &n, nil
}

func (s *service) Theme(ctx context.Context) Theme {
	return s.repo.Theme()
}

func (s *service) UpdateTheme(ctx context.Context, raw string) (Theme, error) {
	log := config.WithContext(ctx)

	t := Theme(raw)
	if !t.IsValid() {
		return "", ErrInvalidTheme
	}

	if err := s.repo.SaveTheme(t); err != nil {
		log.WithError(err).Error("Failed to save theme")
		return "", err
	}
	log.WithField("theme", t).Info("Theme updated")
	return t, nil
}
