package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// Repository mocks
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User, defaultGroupName string) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
	getUserByIDFn     func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn      func(ctx context.Context, userID int64, name, passwordHash *string) (models.User, error)
	deleteUserCleanFn func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User, defaultGroupName string) (models.User, error) {
	return m.createUserFn(ctx, user, defaultGroupName)
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.findUserByLoginFn(ctx, login)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, name, passwordHash *string) (models.User, error) {
	return m.updateUserFn(ctx, userID, name, passwordHash)
}

func (m *mockUserRepository) DeleteUserClean(ctx context.Context, userID int64) error {
	return m.deleteUserCleanFn(ctx, userID)
}

// mockSessionRepository implements store.SessionRepository for unit tests.
type mockSessionRepository struct {
	createSessionFn func(ctx context.Context, session models.Session) error
	getSessionFn    func(ctx context.Context, token string) (models.Session, error)
	deleteSessionFn func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return m.createSessionFn(ctx, session)
}

func (m *mockSessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	return m.getSessionFn(ctx, token)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	return m.deleteSessionFn(ctx, token)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.deleteExpiredFn(ctx, now)
}

// mockGroupRepository implements store.GroupRepository for unit tests.
type mockGroupRepository struct {
	createGroupFn        func(ctx context.Context, group models.Group) (models.Group, error)
	getGroupFn           func(ctx context.Context, userID, groupID int64) (models.Group, error)
	getAllUserGroupsFn   func(ctx context.Context, userID int64) ([]models.Group, error)
	updateGroupFn        func(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error)
	deleteGroupDetachFn  func(ctx context.Context, userID, groupID int64) error
	deleteGroupCascadeFn func(ctx context.Context, userID, groupID int64) error
}

func (m *mockGroupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	return m.createGroupFn(ctx, group)
}

func (m *mockGroupRepository) GetGroup(ctx context.Context, userID, groupID int64) (models.Group, error) {
	return m.getGroupFn(ctx, userID, groupID)
}

func (m *mockGroupRepository) GetAllUserGroups(ctx context.Context, userID int64) ([]models.Group, error) {
	return m.getAllUserGroupsFn(ctx, userID)
}

func (m *mockGroupRepository) UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error) {
	return m.updateGroupFn(ctx, userID, groupID, patch)
}

func (m *mockGroupRepository) DeleteGroupDetach(ctx context.Context, userID, groupID int64) error {
	return m.deleteGroupDetachFn(ctx, userID, groupID)
}

func (m *mockGroupRepository) DeleteGroupCascade(ctx context.Context, userID, groupID int64) error {
	return m.deleteGroupCascadeFn(ctx, userID, groupID)
}

// mockTodoRepository implements store.TodoRepository for unit tests.
type mockTodoRepository struct {
	createTodoFn      func(ctx context.Context, todo models.Todo) (models.Todo, error)
	getTodoFn         func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	getAllUserTodosFn func(ctx context.Context, userID int64) ([]models.Todo, error)
	updateTodoFn      func(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error)
	markDoneFn        func(ctx context.Context, userID, todoID int64, now time.Time) (models.Todo, error)
	deleteTodoFn      func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.createTodoFn(ctx, todo)
}

func (m *mockTodoRepository) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.getTodoFn(ctx, userID, todoID)
}

func (m *mockTodoRepository) GetAllUserTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return m.getAllUserTodosFn(ctx, userID)
}

func (m *mockTodoRepository) UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	return m.updateTodoFn(ctx, userID, todoID, patch)
}

func (m *mockTodoRepository) MarkDone(ctx context.Context, userID, todoID int64, now time.Time) (models.Todo, error) {
	return m.markDoneFn(ctx, userID, todoID, now)
}

func (m *mockTodoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return m.deleteTodoFn(ctx, userID, todoID)
}
