package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/models"
	"todoapp/internal/pagination"
	"todoapp/internal/response"
	"todoapp/internal/services"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	todoService     services.TodoServicer
	activityService services.ActivityServicer
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService services.TodoServicer, activityService services.ActivityServicer) *TodoHandler {
	return &TodoHandler{todoService: todoService, activityService: activityService}
}

// ListTodosQuery represents the query string of the todo listing
type ListTodosQuery struct {
	pagination.PageRequest
	Search     string `form:"search" binding:"max=255"`
	Completed  string `form:"completed" binding:"omitempty,oneof=true false"`
	CategoryID *uint  `form:"category_id" binding:"omitempty,min=1"`
	Priority   string `form:"priority" binding:"omitempty,priority"`
}

// filter converts the bound query into a service filter. Empty values
// impose no condition.
func (q ListTodosQuery) filter() services.TodoFilter {
	var f services.TodoFilter
	if search := strings.TrimSpace(q.Search); search != "" {
		f.Search = &search
	}
	if q.Completed != "" {
		completed := q.Completed == "true"
		f.Completed = &completed
	}
	f.CategoryID = q.CategoryID
	if q.Priority != "" {
		p := models.Priority(q.Priority)
		f.Priority = &p
	}
	return f
}

// CreateTodoRequest represents the request payload for creating a todo
type CreateTodoRequest struct {
	Title       string          `json:"title" example:"Complete project proposal"`
	Description *string         `json:"description" example:"Write and submit the Q1 project proposal"`
	CategoryID  *uint           `json:"category_id" example:"1"`
	Priority    models.Priority `json:"priority" binding:"omitempty,priority" example:"high"`
	DueDate     *time.Time      `json:"due_date" example:"2025-01-15T17:00:00Z"`
}

// UpdateTodoRequest represents the request payload for updating a todo.
// Omitted keys keep their value; null clears description, category_id
// and due_date.
type UpdateTodoRequest struct {
	Title       *string             `json:"title"`
	Description Nullable[string]    `json:"description" swaggertype:"string"`
	CategoryID  Nullable[uint]      `json:"category_id" swaggertype:"integer"`
	Priority    *models.Priority    `json:"priority" binding:"omitempty,priority"`
	DueDate     Nullable[time.Time] `json:"due_date" swaggertype:"string" format:"date-time"`
	Completed   *bool               `json:"completed"`
}

func (r UpdateTodoRequest) update() services.TodoUpdate {
	u := services.TodoUpdate{
		Title:     r.Title,
		Priority:  r.Priority,
		Completed: r.Completed,
	}
	if r.Description.Set {
		if r.Description.Null {
			u.ClearDescription = true
		} else {
			u.Description = &r.Description.Value
		}
	}
	if r.CategoryID.Set {
		// category_id 0 is treated like null, as the web client sends it
		// for "no category".
		if r.CategoryID.Null || r.CategoryID.Value == 0 {
			u.ClearCategory = true
		} else {
			u.CategoryID = &r.CategoryID.Value
		}
	}
	if r.DueDate.Set {
		if r.DueDate.Null {
			u.ClearDueDate = true
		} else {
			u.DueDate = &r.DueDate.Value
		}
	}
	return u
}

// ListTodos handles the paginated, filtered todo listing
// @Summary     List todos
// @Description Get todos matching every provided filter, newest first
// @Tags        todos
// @Produce     json
// @Param       page        query int    false "Page number (default 1)"
// @Param       limit       query int    false "Items per page (default 10, max 100)"
// @Param       search      query string false "Case-insensitive substring of the title"
// @Param       completed   query bool   false "Filter by completion status"
// @Param       category_id query int    false "Filter by category"
// @Param       priority    query string false "Filter by priority" Enums(low, medium, high)
// @Success     200 {object} response.Envelope{data=[]models.Todo} "Page of todos"
// @Failure     400 {object} response.Envelope "Invalid query parameters"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	var query ListTodosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	page, err := h.todoService.ListTodos(c.Request.Context(), query.filter(), query.Window())
	if err != nil {
		respondWithError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetTodo handles the retrieval of a single todo
// @Summary     Get a todo
// @Tags        todos
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} response.Envelope{data=models.Todo} "Todo"
// @Failure     400 {object} response.Envelope "Invalid ID"
// @Failure     404 {object} response.Envelope "Todo not found"
// @Router      /todos/{id} [get]
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response.OK(c, todo)
}

// CreateTodo handles the creation of a new todo
// @Summary     Create a todo
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       request body CreateTodoRequest true "Todo details"
// @Success     201 {object} response.Envelope{data=models.Todo} "Todo created"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	categoryID := req.CategoryID
	if categoryID != nil && *categoryID == 0 {
		categoryID = nil
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), services.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  categoryID,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionCreateTodo, services.ResourceTodo, todo.ID, c.ClientIP(),
		map[string]interface{}{
			"title":       todo.Title,
			"priority":    todo.Priority,
			"category_id": todo.CategoryID,
		})

	response.Created(c, todo)
}

// UpdateTodo handles partial updates of a todo
// @Summary     Update a todo
// @Description Update the provided fields; null clears description, category_id and due_date
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Todo ID"
// @Param       request body UpdateTodoRequest true "Fields to update"
// @Success     200 {object} response.Envelope{data=models.Todo} "Todo updated"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     404 {object} response.Envelope "Todo not found"
// @Router      /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, req.update())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionUpdateTodo, services.ResourceTodo, todo.ID, c.ClientIP(),
		map[string]interface{}{
			"title":       todo.Title,
			"completed":   todo.Completed,
			"priority":    todo.Priority,
			"category_id": todo.CategoryID,
		})

	response.OK(c, todo)
}

// ToggleTodo handles flipping the completion status of a todo
// @Summary     Toggle a todo
// @Tags        todos
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} response.Envelope{data=models.Todo} "Todo toggled"
// @Failure     404 {object} response.Envelope "Todo not found"
// @Router      /todos/{id}/toggle [patch]
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.ToggleTodo(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionToggleTodo, services.ResourceTodo, todo.ID, c.ClientIP(),
		map[string]interface{}{"completed": todo.Completed})

	response.OK(c, todo)
}

// DeleteTodo handles the deletion of a todo
// @Summary     Delete a todo
// @Tags        todos
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} response.Envelope "Todo deleted"
// @Failure     404 {object} response.Envelope "Todo not found"
// @Router      /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionDeleteTodo, services.ResourceTodo, id, c.ClientIP(), nil)

	response.Message(c, "Todo deleted successfully")
}
