package handlers

import (
	"github.com/JorgeJ97/task-management-backend/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	Checks      map[string]HealthCheck // readiness checks (database, redis)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler   *AuthHandler
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:   NewAuthHandler(services.UserService),
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.Checks),
	}
}
