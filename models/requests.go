package models

// RegisterRequest is the body of POST /api/user/create.
type RegisterRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// GroupCreate is the body of POST /api/group/create.
type GroupCreate struct {
	Name string `json:"name"`
}
