package service

import (
	"CareerBridge/internal/api/config"
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/redis"
	"CareerBridge/internal/pkg/security"
	"CareerBridge/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.LoginDTO, error)
	Logout(ctx context.Context, token string) error
	CheckAuth(ctx context.Context, userID uint64) (*dto.CheckAuthDTO, error)
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	username := strings.TrimSpace(regDTO.Username)
	email := strings.TrimSpace(regDTO.Email)
	if username == "" || email == "" || regDTO.Password == "" {
		return ErrFieldsRequired
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         consts.RoleUser,
	}
	err = s.userRepo.CreateUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return ErrUserExist
	}
	return err
}

func (s *UserServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (*dto.LoginDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(credential.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(credential.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginDTO{
		Message: "Login successful",
		Token:   token,
		User:    toUserDTO(user),
	}, nil
}

// Logout 将 Token 签名加入黑名单直至过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, security.TokenTTL())
}

func (s *UserServiceImpl) CheckAuth(ctx context.Context, userID uint64) (*dto.CheckAuthDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.CheckAuthDTO{
		Authenticated: true,
		User:          toUserDTO(user),
	}, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		d := toUserDTO(user)
		createdAt := user.CreatedAt
		d.CreatedAt = &createdAt
		res = append(res, d)
	}
	return res, nil
}

// EnsureAdmin 启动时保证管理员账号存在
func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	user, err := s.userRepo.GetUserByUsername(ctx, cfg.Username)
	if err != nil {
		return err
	}
	if user != nil {
		if user.Role != consts.RoleAdmin {
			log.WarnContext(ctx, "configured admin username belongs to a non-admin user", "username", cfg.Username)
		}
		return nil
	}

	passwordHash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	err = s.userRepo.CreateUser(ctx, &model.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: passwordHash,
		Role:         consts.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "Admin account created", "username", cfg.Username)
	return nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
