package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=100"`
	Password string `json:"password" validate:"max=72"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserDTO 用户
type UserDTO struct {
	ID        uint64     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// LoginDTO 登录结果
type LoginDTO struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    *UserDTO `json:"user"`
}

// CheckAuthDTO 登录态检查结果
type CheckAuthDTO struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserDTO `json:"user,omitempty"`
}
