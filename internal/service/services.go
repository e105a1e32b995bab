package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// Services bundles every business-logic service consumed by the HTTP layer.
type Services struct {
	AuthService
	UserService
	GroupService
	TodoService
}

// NewServices wires all services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, cfg, logger),
		UserService:  NewUserService(storages.UserRepository, logger),
		GroupService: NewGroupService(storages.GroupRepository, cfg, logger),
		TodoService:  NewTodoService(storages.TodoRepository, storages.GroupRepository, logger),
	}
}
