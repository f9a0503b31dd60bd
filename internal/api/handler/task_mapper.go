package handler

import (
	"github.com/taskdeck/task-api/internal/core/domain"
	"github.com/taskdeck/task-api/internal/core/ports"
)

// --- Request → Service input ---

func toUpdate(req updateTaskRequest) ports.TaskUpdate {
	upd := ports.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		upd.Status = &status
	}
	return upd
}

// --- Domain → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListTasksResult) listTasksResponse {
	items := make([]taskResponse, len(r.Items))
	for i, t := range r.Items {
		items[i] = toTaskResponse(t)
	}
	return listTasksResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
