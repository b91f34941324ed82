package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AvishekRimal/student-planner/internal/auth"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/dto"
	"github.com/AvishekRimal/student-planner/internal/repo"
	"github.com/AvishekRimal/student-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), dom.Task{
		UserID:         auth.UserIDFromContext(c),
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Deadline:       req.Deadline.Ptr(),
		Priority:       req.Priority,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
		NextDueDate:    req.NextDueDate.Ptr(),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// List godoc
// @Summary      List tasks with filtering, searching and sorting
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        priority   query  string  false  "High, Medium or Low"
// @Param        category   query  string  false  "Exact category"
// @Param        completed  query  bool    false  "Completion flag"
// @Param        search     query  string  false  "Match in title/description"
// @Param        sort       query  string  false  "e.g. priority,-createdAt"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	filter := repo.TaskFilter{
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if raw, ok := c.GetQuery("completed"); ok {
		completed := raw == "true"
		filter.Completed = &completed
	}

	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Count: len(list), Tasks: tasksToResponses(list)})
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := service.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Priority:       req.Priority,
		Completed:      req.Completed,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
	}
	if req.Deadline.Provided() {
		patch.Deadline = service.OptionalTime{Set: true, Value: req.Deadline.Ptr()}
	}
	if req.NextDueDate.Provided() {
		patch.NextDueDate = service.OptionalTime{Set: true, Value: req.NextDueDate.Ptr()}
	}

	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Complete godoc
// @Summary      Toggle task completion
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.CompleteTaskRequest  true  "Completion flag"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.SetCompleted(c.Request.Context(), auth.UserIDFromContext(c), id, *req.Completed)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task and its subtasks
// @Tags         tasks
// @Security     CookieAuth
// @Param        id   path  int  true  "Task ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubTasks godoc
// @Summary      List a task's subtasks
// @Tags         subtasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {array}   dto.SubTaskResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/subtasks [get]
func (h *TaskHandler) ListSubTasks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	subs, err := h.svc.ListSubTasks(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.SubTaskResponse, len(subs))
	for i, sub := range subs {
		out[i] = dto.SubTaskResponse(sub)
	}
	c.JSON(http.StatusOK, out)
}

// AddSubTask godoc
// @Summary      Add a subtask
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.CreateSubTaskRequest  true  "Subtask body"
// @Success      201   {object}  dto.SubTaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/subtasks [post]
func (h *TaskHandler) AddSubTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.svc.AddSubTask(c.Request.Context(), auth.UserIDFromContext(c), id, req.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SubTaskResponse(sub))
}

// UpdateSubTask godoc
// @Summary      Update a subtask
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id         path      int     true  "Task ID"
// @Param        subtaskId  path      string  true  "Subtask ID"
// @Param        body       body      dto.UpdateSubTaskRequest  true  "Partial update"
// @Success      200        {object}  dto.SubTaskResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /tasks/{id}/subtasks/{subtaskId} [patch]
func (h *TaskHandler) UpdateSubTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.svc.UpdateSubTask(c.Request.Context(), auth.UserIDFromContext(c), id,
		c.Param("subtaskId"), req.Text, req.Completed)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubTaskResponse(sub))
}

// DeleteSubTask godoc
// @Summary      Delete a subtask
// @Tags         subtasks
// @Security     CookieAuth
// @Param        id         path  int     true  "Task ID"
// @Param        subtaskId  path  string  true  "Subtask ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/subtasks/{subtaskId} [delete]
func (h *TaskHandler) DeleteSubTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := h.svc.DeleteSubTask(c.Request.Context(), auth.UserIDFromContext(c), id, c.Param("subtaskId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeServiceError maps service sentinels to HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrSubTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidRecurrence),
		errors.Is(err, service.ErrContentRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	subs := make([]dto.SubTaskResponse, len(t.SubTasks))
	for i, sub := range t.SubTasks {
		subs[i] = dto.SubTaskResponse(sub)
	}
	return dto.TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Category:       t.Category,
		Deadline:       t.Deadline,
		Priority:       t.Priority,
		Completed:      t.Completed,
		SubTasks:       subs,
		IsRecurring:    t.IsRecurring,
		RecurrenceType: t.RecurrenceType,
		NextDueDate:    t.NextDueDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
