package handler

import "time"

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// updateTaskRequest carries a partial update: nil fields are not applied.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
}

type listTasksQuery struct {
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,oneof=pending in_progress done"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// --- Response types ---
// These are intentionally separate from the domain types so the JSON
// contract is not coupled to internal changes.

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listTasksResponse struct {
	Data       []taskResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
