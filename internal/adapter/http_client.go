package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	// the session cookie set by the server on register/login lives in the
	// jar and is attached to every subsequent request automatically
	jar, _ := cookiejar.New(nil)

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/user/create")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetUser(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/user/get")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Post("/api/user/update")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/user/delete")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, input models.TodoCreate) (models.Todo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/todo/create")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}

	return decodeTodo(resp)
}

func (h *httpServerAdapter) ListTodos(ctx context.Context) ([]models.Todo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/todo/get")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var todos []models.Todo
	if err = json.Unmarshal(resp.Body(), &todos); err != nil {
		return nil, fmt.Errorf("decode todos response: %w", err)
	}

	return todos, nil
}

func (h *httpServerAdapter) UpdateTodo(ctx context.Context, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Post(fmt.Sprintf("/api/todo/update/%d", todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}

	return decodeTodo(resp)
}

func (h *httpServerAdapter) MarkDone(ctx context.Context, todoID int64) (models.Todo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/api/todo/markdone/%d", todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("mark done request: %w", err)
	}

	return decodeTodo(resp)
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/todo/delete/%d", todoID))
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateGroup(ctx context.Context, input models.GroupCreate) (models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/group/create")
	if err != nil {
		return models.Group{}, fmt.Errorf("create group request: %w", err)
	}

	return decodeGroup(resp)
}

func (h *httpServerAdapter) ListGroups(ctx context.Context) ([]models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/group/get")
	if err != nil {
		return nil, fmt.Errorf("list groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var groups []models.Group
	if err = json.Unmarshal(resp.Body(), &groups); err != nil {
		return nil, fmt.Errorf("decode groups response: %w", err)
	}

	return groups, nil
}

func (h *httpServerAdapter) UpdateGroup(ctx context.Context, groupID int64, patch models.GroupPatch) (models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Post(fmt.Sprintf("/api/group/update/%d", groupID))
	if err != nil {
		return models.Group{}, fmt.Errorf("update group request: %w", err)
	}

	return decodeGroup(resp)
}

func (h *httpServerAdapter) DeleteGroup(ctx context.Context, groupID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/group/delete/%d", groupID))
	if err != nil {
		return fmt.Errorf("delete group request: %w", err)
	}

	return mapHTTPError(resp)
}

func decodeTodo(resp *resty.Response) (models.Todo, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todo models.Todo
	if err := json.Unmarshal(resp.Body(), &todo); err != nil {
		return models.Todo{}, fmt.Errorf("decode todo response: %w", err)
	}

	return todo, nil
}

func decodeGroup(resp *resty.Response) (models.Group, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Group{}, err
	}

	var group models.Group
	if err := json.Unmarshal(resp.Body(), &group); err != nil {
		return models.Group{}, fmt.Errorf("decode group response: %w", err)
	}

	return group, nil
}
