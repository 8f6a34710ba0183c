package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

const dateLayout = "2006-01-02"

var (
	ErrTitleRequired     = errors.New("goal title is required")
	ErrInvalidTargetDate = errors.New("target date must be a valid YYYY-MM-DD date")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
)

type Service interface {
	List(ctx context.Context) []Goal
	Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	Update(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error)
	ToggleComplete(ctx context.Context, id string) (*Goal, error)
	Stats(ctx context.Context) StatsResponse
	ByDate(ctx context.Context, date string) ([]Goal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateFields(title, targetDate string, progress int) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if _, err := time.Parse(dateLayout, targetDate); err != nil {
		return ErrInvalidTargetDate
	}
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}
	return nil
}

func (s *service) List(ctx context.Context) []Goal {
	return s.repo.List()
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	if err := validateFields(dto.Title, dto.TargetDate, dto.Progress); err != nil {
		log.WithError(err).Warn("Rejected goal creation")
		return nil, err
	}

	g, err := s.repo.Create(Goal{
		Title:       strings.TrimSpace(dto.Title),
		Description: dto.Description,
		TargetDate:  dto.TargetDate,
		Progress:    dto.Progress,
		Category:    NormalizeCategory(dto.Category),
	})
	if err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created successfully")
	return g, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	if err := validateFields(dto.Title, dto.TargetDate, dto.Progress); err != nil {
		log.WithError(err).Warn("Rejected goal update")
		return nil, err
	}

	g, err := s.repo.Update(id, Goal{
		Title:       strings.TrimSpace(dto.Title),
		Description: dto.Description,
		TargetDate:  dto.TargetDate,
		Progress:    dto.Progress,
		Category:    NormalizeCategory(dto.Category),
		Completed:   dto.Completed,
	})
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found for update")
			return nil, err
		}
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal updated successfully")
	return g, nil
}

func (s *service) ToggleComplete(ctx context.Context, id string) (*Goal, error) {
	log := config.WithContext(ctx)

	g, err := s.repo.ToggleComplete(id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found for toggle")
			return nil, err
		}
		log.WithError(err).Error("Failed to toggle goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal toggled successfully")
	return g, nil
}

func (s *service) Stats(ctx context.Context) StatsResponse {
	goals := s.repo.List()
	done := len(s.repo.Completed())
	return StatsResponse{
		Total:           len(goals),
		Done:            done,
		Active:          len(goals) - done,
		AverageProgress: s.repo.AverageProgress(),
	}
}

func (s *service) ByDate(ctx context.Context, date string) ([]Goal, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidTargetDate
	}

	var out []Goal
	for _, g := range s.repo.List() {
		if g.TargetDate == date {
			out = append(out, g)
		}
	}
	return out, nil
}
