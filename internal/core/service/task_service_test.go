package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/core/domain"
	"github.com/taskdeck/task-api/internal/core/ports"
)

// stubTaskRepo mirrors the production repository contract: every scoped
// lookup filters by id AND owner in one step.
type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task), nextID: 1}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	created := cloneTask(t)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.tasks[created.ID] = cloneTask(created)
	return created, nil
}

func (r *stubTaskRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) Update(_ context.Context, id, ownerID string, upd ports.TaskUpdate) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	t.UpdatedAt = time.Now().UTC()
	return cloneTask(t), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id, ownerID string) error {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.ListTasksFilter) ([]*domain.Task, int64, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, int64(len(out)), nil
}

func strPtr(s string) *string { return &s }

func TestTaskService_Create_ForcesOwner(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())
	owner := &domain.User{ID: "user-1"}

	task, err := svc.CreateTask(context.Background(), owner, ports.CreateTaskInput{
		Title:       "write report",
		Description: "quarterly numbers",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %s", task.OwnerID)
	}
	if task.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", task.Status)
	}
}

func TestTaskService_Get_CrossOwnerIsNotFound(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	created, err := svc.CreateTask(context.Background(), &domain.User{ID: "user-a"}, ports.CreateTaskInput{Title: "a's task"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetTask(context.Background(), &domain.User{ID: "user-b"}, created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	// The owner still sees it.
	if _, err := svc.GetTask(context.Background(), &domain.User{ID: "user-a"}, created.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestTaskService_Update_Partial(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())
	owner := &domain.User{ID: "user-1"}

	created, err := svc.CreateTask(context.Background(), owner, ports.CreateTaskInput{
		Title:       "original title",
		Description: "original description",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := domain.StatusDone
	updated, err := svc.UpdateTask(context.Background(), owner, created.ID, ports.TaskUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != domain.StatusDone {
		t.Fatalf("expected done status, got %s", updated.Status)
	}
	if updated.Title != "original title" || updated.Description != "original description" {
		t.Fatalf("absent fields were modified: %+v", updated)
	}
}

func TestTaskService_Update_CrossOwnerIsNotFound(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	created, err := svc.CreateTask(context.Background(), &domain.User{ID: "user-a"}, ports.CreateTaskInput{Title: "a's task"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateTask(context.Background(), &domain.User{ID: "user-b"}, created.ID, ports.TaskUpdate{Title: strPtr("stolen")})
	if err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	created, err := svc.CreateTask(context.Background(), &domain.User{ID: "user-a"}, ports.CreateTaskInput{Title: "a's task"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteTask(context.Background(), &domain.User{ID: "user-b"}, created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if err := svc.DeleteTask(context.Background(), &domain.User{ID: "user-a"}, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestTaskService_List_ScopedToOwner(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateTask(context.Background(), &domain.User{ID: "user-a"}, ports.CreateTaskInput{Title: "a task"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.CreateTask(context.Background(), &domain.User{ID: "user-b"}, ports.CreateTaskInput{Title: "b task"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	result, err := svc.ListTasks(context.Background(), ports.ListTasksInput{OwnerID: "user-a"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 3 || len(result.Items) != 3 {
		t.Fatalf("expected 3 tasks, got total=%d items=%d", result.Total, len(result.Items))
	}
	for _, task := range result.Items {
		if task.OwnerID != "user-a" {
			t.Fatalf("foreign task leaked into list: %+v", task)
		}
	}
}

func TestTaskService_List_ClampsPaging(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	result, err := svc.ListTasks(context.Background(), ports.ListTasksInput{OwnerID: "user-a", Page: -3, Limit: 10000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page 1, got %d", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("expected limit %d, got %d", maxPageLimit, result.Limit)
	}
}
