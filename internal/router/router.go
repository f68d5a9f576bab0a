// Package router assembles the HTTP surface of the API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "todoapp/internal/docs" // Import swagger docs
	apperrors "todoapp/internal/errors"
	"todoapp/internal/handlers"
	"todoapp/internal/middleware"
	"todoapp/internal/response"
	"todoapp/internal/services"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Todos      services.TodoServicer
	Categories services.CategoryServicer
	Activity   services.ActivityServicer
	DB         handlers.Pinger

	CORSOrigin string
	Version    string
}

// New builds the Gin engine with middleware, API routes, Swagger UI and the
// JSON 404 fallback.
func New(deps Deps) *gin.Engine {
	todoHandler := handlers.NewTodoHandler(deps.Todos, deps.Activity)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories, deps.Activity)
	activityHandler := handlers.NewActivityHandler(deps.Activity)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Version)

	corsOrigin := deps.CORSOrigin
	if corsOrigin == "" {
		corsOrigin = "*"
	}

	r := gin.New()
	r.Use(middleware.RequestLogging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(corsOrigin))

	// Swagger documentation
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	api := r.Group("/api")
	api.GET("", healthHandler.Info)
	api.GET("/health", healthHandler.Health)

	todos := api.Group("/todos")
	todos.GET("", todoHandler.ListTodos)
	todos.POST("", todoHandler.CreateTodo)
	todos.GET("/:id", todoHandler.GetTodo)
	todos.PUT("/:id", todoHandler.UpdateTodo)
	todos.PATCH("/:id/toggle", todoHandler.ToggleTodo)
	todos.DELETE("/:id", todoHandler.DeleteTodo)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	api.GET("/activity", activityHandler.ListActivity)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})

	return r
}
