package journal

import (
	"context"
	"errors"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

var (
	ErrEmptyEntry  = errors.New("entry needs some content or a mood")
	ErrInvalidMood = errors.New("unknown mood")
)

type Service interface {
	List(ctx context.Context) []JournalEntry
	Create(ctx context.Context, dto CreateEntryDTO) (*JournalEntry, error)
	Search(ctx context.Context, term string) []JournalEntry
	Stats(ctx context.Context) StatsResponse
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) []JournalEntry {
	return s.repo.List()
}

func (s *service) Create(ctx context.Context, dto CreateEntryDTO) (*JournalEntry, error) {
	log := config.WithContext(ctx)

	mood := Mood(dto.Mood)
	if !mood.IsValid() {
		log.WithField("mood", dto.Mood).Warn("Rejected journal entry with unknown mood")
		return nil, ErrInvalidMood
	}

	entry, err := s.repo.Create(dto.Content, mood, dto.Tags)
	if err != nil {
		log.WithError(err).Error("Failed to create journal entry")
		return nil, err
	}
	if entry == nil {
		// The repository skipped an empty entry; the API caller still gets
		// a reason.
		return nil, ErrEmptyEntry
	}

	log.WithField("entry_id", entry.ID).Info("Journal entry created successfully")
	return entry, nil
}

func (s *service) Search(ctx context.Context, term string) []JournalEntry {
	return s.repo.Search(term)
}

func (s *service) Stats(ctx context.Context) StatsResponse {
	return s.repo.Stats()
}
