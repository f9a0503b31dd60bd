package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/core/domain"
	"github.com/taskdeck/task-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TaskService implements the owner-gated task use cases. The ownership
// check lives in the repository queries themselves (id AND owner in a
// single filter), so there is no window between check and use.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// CreateTask creates a task owned by owner. The owner id always comes from
// the authenticated user, regardless of the request payload.
func (s *TaskService) CreateTask(ctx context.Context, owner *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", owner.ID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("owner_id", owner.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, owner *domain.User, id string) (*domain.Task, error) {
	return s.repo.FindByIDAndOwner(ctx, id, owner.ID)
}

// UpdateTask applies a partial update: only non-nil fields of upd are
// written, everything else keeps its current value.
func (s *TaskService) UpdateTask(ctx context.Context, owner *domain.User, id string, upd ports.TaskUpdate) (*domain.Task, error) {
	updated, err := s.repo.Update(ctx, id, owner.ID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", id).Str("owner_id", owner.ID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, owner *domain.User, id string) error {
	if err := s.repo.Delete(ctx, id, owner.ID); err != nil {
		return err
	}

	s.logger.Info().Str("task_id", id).Str("owner_id", owner.ID).Msg("task deleted")
	return nil
}

// ListTasks returns a page of the owner's tasks. Results are always scoped
// to the requesting owner no matter what else is in storage.
func (s *TaskService) ListTasks(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListTasksFilter{
		OwnerID: input.OwnerID,
		Status:  input.Status,
		Search:  input.Search,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListTasksResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
