package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/user/filmhub/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrDuplicate 唯一约束冲突（用户名或邮箱已存在）
var ErrDuplicate = errors.New("记录已存在")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户，用户名或邮箱重复时返回 ErrDuplicate
func (r *UserRepository) Create(username, email, password string) (*model.User, error) {
	// 密码哈希
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return user, nil
}

// FindByUsername 根据用户名查找用户
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByID 根据 ID 查找用户
func (r *UserRepository) FindByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CheckPassword 验证密码
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// UpdateUsername 更新用户名，新用户名被占用时返回 ErrDuplicate
func (r *UserRepository) UpdateUsername(userID int, username string) error {
	var existing model.User
	err := r.db.Where("username = ? AND id <> ?", username, userID).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = r.db.Model(&model.User{}).Where("id = ?", userID).Update("username", username).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdatePassword 更新密码
func (r *UserRepository) UpdatePassword(userID int, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("password_hash", string(hash)).Error
}

// UpdateAvatar 更新头像路径
func (r *UserRepository) UpdateAvatar(userID int, avatar string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("avatar", avatar).Error
}

// isUniqueViolation 判断是否为唯一约束错误
// postgres 返回 SQLSTATE 23505，sqlite 返回 UNIQUE constraint failed
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
