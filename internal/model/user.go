package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username" gorm:"unique"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserDTO 用户信息响应结构（不含密码哈希）
type UserDTO struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"created_at"`
}

// DTO 转换为响应结构
func (u *User) DTO() *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
