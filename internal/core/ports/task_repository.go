package ports

import (
	"context"

	"github.com/taskdeck/task-api/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// OwnerID is always set by the service layer; the repository never runs
// an unscoped query.
type ListTasksFilter struct {
	OwnerID string
	Status  string // optional: filter by task status
	Search  string // optional: case-insensitive substring match on title
	Page    int    // 1-based
	Limit   int    // max rows per page (capped by the service)
}

// TaskUpdate describes a partial update. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks. Every lookup
// that takes an ownerID must filter by id AND owner in a single query so
// that a task missing and a task owned by someone else are
// indistinguishable (both return domain.ErrTaskNotFound).
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// Update applies the non-nil fields of upd atomically, filtered by id
	// and owner, and returns the updated document.
	Update(ctx context.Context, id, ownerID string, upd TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
	// List returns a page of the owner's tasks and the total match count.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, int64, error)
}
