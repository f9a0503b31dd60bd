package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/task-api/internal/api/metrics"
	"github.com/taskdeck/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the Auth middleware; ownership enforcement happens in the service
// and repository layers.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), user, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /api/tasks.
//
// @Summary      List the current user's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring match on title"
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listTasksResponse
// @Failure      401     {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var q listTasksQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	result, err := h.service.ListTasks(c.Request().Context(), ports.ListTasksInput{
		OwnerID: user.ID,
		Status:  q.Status,
		Search:  q.Search,
		Page:    q.Page,
		Limit:   q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /api/tasks/:id.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.service.GetTask(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /api/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.UpdateTask(c.Request().Context(), user, c.Param("id"), toUpdate(req))
	if err != nil {
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
