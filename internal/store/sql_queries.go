package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// All queries use $N placeholders, which both the pgx and the
// mattn/go-sqlite3 drivers accept. Timestamps are passed from Go rather
// than computed in SQL so that both backends behave identically.
const (
	createUser = `INSERT INTO users (login, name, password_hash, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, login, name, password_hash, created_at;`

	createDefaultGroup = `INSERT INTO todo_groups (user_id, name, removable, created_at)
    VALUES ($1, $2, FALSE, $3);`

	findUserByLogin = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	getUserByID = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE id = $1;`

	deleteUserSessions = `DELETE FROM sessions WHERE user_id = $1;`
	deleteUserTodos    = `DELETE FROM todos WHERE user_id = $1;`
	deleteUserGroups   = `DELETE FROM todo_groups WHERE user_id = $1;`
	deleteUser         = `DELETE FROM users WHERE id = $1;`

	createSession = `INSERT INTO sessions (token, user_id, created_at, expires_at)
    VALUES ($1, $2, $3, $4);`

	getSession = `SELECT token, user_id, created_at, expires_at
    FROM sessions
    WHERE token = $1;`

	deleteSession = `DELETE FROM sessions WHERE token = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= $1;`

	createGroup = `INSERT INTO todo_groups (user_id, name, removable, created_at)
    VALUES ($1, $2, TRUE, $3)
    RETURNING id, user_id, name, removable, created_at;`

	getGroup = `SELECT id, user_id, name, removable, created_at
    FROM todo_groups
    WHERE id = $1 AND user_id = $2;`

	getAllUserGroups = `SELECT id, user_id, name, removable, created_at
    FROM todo_groups
    WHERE user_id = $1
    ORDER BY id;`

	deleteGroup = `DELETE FROM todo_groups WHERE id = $1 AND user_id = $2;`

	detachGroupTodos = `UPDATE todos
    SET group_id = NULL, updated_at = $1
    WHERE group_id = $2 AND user_id = $3;`

	deleteGroupTodos = `DELETE FROM todos WHERE group_id = $1 AND user_id = $2;`

	createTodo = `INSERT INTO todos (user_id, group_id, text, done, due_date, created_at, updated_at)
    VALUES ($1, $2, $3, FALSE, $4, $5, $5)
    RETURNING id, user_id, group_id, text, done, due_date, completed_at, created_at, updated_at;`

	getTodo = `SELECT id, user_id, group_id, text, done, due_date, completed_at, created_at, updated_at
    FROM todos
    WHERE id = $1 AND user_id = $2;`

	getAllUserTodos = `SELECT id, user_id, group_id, text, done, due_date, completed_at, created_at, updated_at
    FROM todos
    WHERE user_id = $1
    ORDER BY id;`

	// markTodoDone is idempotent: when the todo is already done, the CASE
	// expressions keep completed_at and updated_at unchanged, so a repeat
	// call returns an identical row.
	markTodoDone = `UPDATE todos
    SET done = TRUE,
        completed_at = CASE WHEN done THEN completed_at ELSE $1 END,
        updated_at = CASE WHEN done THEN updated_at ELSE $1 END
    WHERE id = $2 AND user_id = $3
    RETURNING id, user_id, group_id, text, done, due_date, completed_at, created_at, updated_at;`

	deleteTodo = `DELETE FROM todos WHERE id = $1 AND user_id = $2;`
)

// todoColumns is the canonical RETURNING column list shared by the
// squirrel-built todo statements.
const todoColumns = "id, user_id, group_id, text, done, due_date, completed_at, created_at, updated_at"

// psql builds statements with $N placeholders for both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery assembles a partial UPDATE of a user profile.
// Only non-nil fields are included; the login column never appears.
func buildUpdateUserQuery(userID int64, name, passwordHash *string) (string, []any, error) {
	update := psql.Update("users")

	if name != nil {
		update = update.Set("name", *name)
	}
	if passwordHash != nil {
		update = update.Set("password_hash", *passwordHash)
	}

	return update.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, login, name, password_hash, created_at").
		ToSql()
}

// buildUpdateGroupQuery assembles a partial UPDATE of a group scoped by owner.
func buildUpdateGroupQuery(userID, groupID int64, patch models.GroupPatch) (string, []any, error) {
	update := psql.Update("todo_groups")

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}

	return update.
		Where(sq.Eq{"id": groupID, "user_id": userID}).
		Suffix("RETURNING id, user_id, name, removable, created_at").
		ToSql()
}

// buildUpdateTodoQuery assembles a partial UPDATE of a todo scoped by owner.
// Field semantics:
//   - Text, DueDate — replaced when non-nil;
//   - Done — replaced when non-nil; completed_at follows the flag
//     (set to now on true, cleared on false);
//   - GroupID — non-nil zero clears the reference, any other non-nil
//     value replaces it;
//   - updated_at is always set to now.
func buildUpdateTodoQuery(userID, todoID int64, patch models.TodoPatch, now time.Time) (string, []any, error) {
	update := psql.Update("todos").Set("updated_at", now)

	if patch.Text != nil {
		update = update.Set("text", *patch.Text)
	}
	if patch.Done != nil {
		update = update.Set("done", *patch.Done)
		if *patch.Done {
			update = update.Set("completed_at", now)
		} else {
			update = update.Set("completed_at", nil)
		}
	}
	if patch.GroupID != nil {
		if *patch.GroupID == 0 {
			update = update.Set("group_id", nil)
		} else {
			update = update.Set("group_id", *patch.GroupID)
		}
	}
	if patch.DueDate != nil {
		update = update.Set("due_date", *patch.DueDate)
	}

	return update.
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		Suffix("RETURNING " + todoColumns).
		ToSql()
}
