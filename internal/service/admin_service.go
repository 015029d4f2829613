package service

import (
	"errors"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/pkg/hash"

	"gorm.io/gorm"
)

// ErrInvalidRole 表示提交的角色不在 {admin, user, customer} 枚举之内。
var ErrInvalidRole = errors.New("Invalid role")

// UserUpdate 描述管理员对用户的部分更新，nil 字段保持原值。
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

// AdminService 接口定义了管理员的用户管理操作。
type AdminService interface {
	ListUsers() ([]model.User, error)
	CreateUser(username, email, password, role string) (*model.User, error)
	UpdateUser(userID uint, update UserUpdate) (*model.User, error)
	DeleteUser(userID uint) error
	UpdateUserRole(userID uint, role string) (*model.User, error)
}

// adminService 是 AdminService 接口的实现。
type adminService struct {
	userRepo repository.UserRepository
}

// NewAdminService 创建一个新的 AdminService 实例。
func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// ListUsers 返回所有用户。
func (s *adminService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

// CreateUser 由管理员创建用户，角色缺省为 customer，任何角色写入前都会校验枚举。
func (s *adminService) CreateUser(username, email, password, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleCustomer
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 将非 nil 字段覆盖到已有用户记录上，其余字段保持原值。
func (s *adminService) UpdateUser(userID uint, update UserUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashedPassword, err := hash.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}
	if update.Role != nil {
		if !model.ValidRole(*update.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 删除指定用户，不存在时返回 gorm.ErrRecordNotFound。
func (s *adminService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

// UpdateUserRole 修改用户角色；非法角色直接拒绝，存储的角色保持不变。
func (s *adminService) UpdateUserRole(userID uint, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
