package ports

import (
	"context"

	"github.com/taskdeck/task-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. The owner is
// taken from the authenticated user, never from the request body.
type CreateTaskInput struct {
	Title       string
	Description string
}

// ListTasksInput carries the list endpoint parameters for one owner.
type ListTasksInput struct {
	OwnerID string
	Status  string
	Search  string
	Page    int
	Limit   int
}

// ListTasksResult is returned by ListTasks.
type ListTasksResult struct {
	Items      []*domain.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TaskService defines the owner-gated task use cases. Operations taking an
// owner parameter return domain.ErrTaskNotFound both when the task does not
// exist and when it belongs to another user.
type TaskService interface {
	CreateTask(ctx context.Context, owner *domain.User, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, owner *domain.User, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, owner *domain.User, id string, upd TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, owner *domain.User, id string) error
	ListTasks(ctx context.Context, input ListTasksInput) (*ListTasksResult, error)
}
