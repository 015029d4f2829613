// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"errors"
	"time"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/pkg/hash"
	"ai-solution-go/pkg/token"

	"gorm.io/gorm"
)

// 认证相关的业务错误，handler 层据此映射 HTTP 状态码。
var (
	ErrUsernameExists     = errors.New("Username already exists")
	ErrEmailExists        = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// UserService 接口定义了注册、登录、登出等认证相关的业务操作。
type UserService interface {
	Register(username, email, password string) (*model.User, error)
	Login(email, password string) (accessToken string, user *model.User, err error)
	Logout(ctx context.Context, tokenString string) error
	GetByID(userID uint) (*model.User, error)
	IsTokenRevoked(ctx context.Context, tokenString string) bool
}

// userService 是 UserService 接口的实现。
type userService struct {
	userRepo   repository.UserRepository
	blacklist  repository.TokenBlacklist
	jwtManager *token.JWTManager
}

// NewUserService 创建一个新的 UserService 实例。
func NewUserService(userRepo repository.UserRepository, blacklist repository.TokenBlacklist, jwtManager *token.JWTManager) UserService {
	return &userService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtManager: jwtManager,
	}
}

// Register 处理用户注册的业务逻辑。
// 新用户的角色一律为 customer，调用方无法指定其他角色。
func (s *userService) Register(username, email, password string) (*model.User, error) {
	// 1. 检查用户名是否已存在
	_, err := s.userRepo.FindByUsername(username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. 检查邮箱是否已存在
	_, err = s.userRepo.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3. 对密码进行哈希处理
	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// 4. 创建新用户
	newUser := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleCustomer,
		IsActive:     true,
	}
	if err := s.userRepo.Create(newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login 处理用户登录的业务逻辑。以邮箱为规范的登录标识。
func (s *userService) Login(email, password string) (string, *model.User, error) {
	// 1. 查找用户
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	// 2. 验证密码
	if !hash.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	// 3. 生成会话 token
	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	return accessToken, user, nil
}

// Logout 处理用户登出逻辑，将 token 加入黑名单直至自然过期。
func (s *userService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtManager.VerifyToken(tokenString)
	if err != nil {
		return err
	}
	// token 的剩余有效期将作为黑名单条目的过期时间。
	expiration := time.Until(claims.ExpiresAt.Time)
	return s.blacklist.Add(ctx, tokenString, expiration)
}

// GetByID 根据用户 ID 获取用户详细信息。
func (s *userService) GetByID(userID uint) (*model.User, error) {
	return s.userRepo.FindByID(userID)
}

// IsTokenRevoked 检查 token 是否已通过登出进入黑名单。
// 黑名单查询失败时按未注销处理，只记录由调用方决定。
func (s *userService) IsTokenRevoked(ctx context.Context, tokenString string) bool {
	revoked, err := s.blacklist.Contains(ctx, tokenString)
	if err != nil {
		return false
	}
	return revoked
}
