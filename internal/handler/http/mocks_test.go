package http

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ────────────────────────── AuthService mock ─────────────────────────

type mockAuthService struct {
	registerFn      func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createSessionFn func(ctx context.Context, userID int64) (models.Session, error)
	resolveFn       func(ctx context.Context, token string) (int64, error)
	revokeFn        func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID int64) (models.Session, error) {
	return m.createSessionFn(ctx, userID)
}

func (m *mockAuthService) Resolve(ctx context.Context, token string) (int64, error) {
	return m.resolveFn(ctx, token)
}

func (m *mockAuthService) Revoke(ctx context.Context, token string) error {
	return m.revokeFn(ctx, token)
}

// ────────────────────────── UserService mock ─────────────────────────

type mockUserService struct {
	getUserFn    func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn func(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	deleteUserFn func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	return m.updateUserFn(ctx, userID, patch)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// ───────────────────────── GroupService mock ─────────────────────────

type mockGroupService struct {
	createGroupFn func(ctx context.Context, userID int64, input models.GroupCreate) (models.Group, error)
	listGroupsFn  func(ctx context.Context, userID int64) ([]models.Group, error)
	updateGroupFn func(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error)
	deleteGroupFn func(ctx context.Context, userID, groupID int64) error
}

func (m *mockGroupService) CreateGroup(ctx context.Context, userID int64, input models.GroupCreate) (models.Group, error) {
	return m.createGroupFn(ctx, userID, input)
}

func (m *mockGroupService) ListGroups(ctx context.Context, userID int64) ([]models.Group, error) {
	return m.listGroupsFn(ctx, userID)
}

func (m *mockGroupService) UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error) {
	return m.updateGroupFn(ctx, userID, groupID, patch)
}

func (m *mockGroupService) DeleteGroup(ctx context.Context, userID, groupID int64) error {
	return m.deleteGroupFn(ctx, userID, groupID)
}

// ────────────────────────── TodoService mock ─────────────────────────

type mockTodoService struct {
	createTodoFn func(ctx context.Context, userID int64, input models.TodoCreate) (models.Todo, error)
	getTodoFn    func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	listTodosFn  func(ctx context.Context, userID int64) ([]models.Todo, error)
	updateTodoFn func(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error)
	markDoneFn   func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	deleteTodoFn func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, userID int64, input models.TodoCreate) (models.Todo, error) {
	return m.createTodoFn(ctx, userID, input)
}

func (m *mockTodoService) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.getTodoFn(ctx, userID, todoID)
}

func (m *mockTodoService) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return m.listTodosFn(ctx, userID)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	return m.updateTodoFn(ctx, userID, todoID, patch)
}

func (m *mockTodoService) MarkDone(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.markDoneFn(ctx, userID, todoID)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return m.deleteTodoFn(ctx, userID, todoID)
}

// newMockServices bundles the given mocks into a [service.Services] value
// the handler accepts. Nil mocks are replaced with empty ones so that an
// unexpected call panics with a clear nil function dereference.
func newMockServices(auth service.AuthService, users service.UserService, groups service.GroupService, todos service.TodoService) *service.Services {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if users == nil {
		users = &mockUserService{}
	}
	if groups == nil {
		groups = &mockGroupService{}
	}
	if todos == nil {
		todos = &mockTodoService{}
	}

	return &service.Services{
		AuthService:  auth,
		UserService:  users,
		GroupService: groups,
		TodoService:  todos,
	}
}
