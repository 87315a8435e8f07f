package handler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/utils"
)

// UpdateUsernameReq 修改用户名请求
type UpdateUsernameReq struct {
	Username string `json:"username" binding:"required,username"`
}

// UpdateUsername 修改用户名
func (h *Handler) UpdateUsername(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateUsernameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "未提供用户名")
		return
	}

	user, ok := h.currentUser(c, userID)
	if !ok {
		return
	}

	if err := h.Repos.User.UpdateUsername(user.ID, req.Username); err != nil {
		if err == repository.ErrDuplicate {
			utils.BadRequest(c, "用户名已存在")
			return
		}
		log.Printf("[UpdateUsername] 更新失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "用户名更新成功", gin.H{"username": req.Username})
}

// ChangePasswordReq 修改密码请求
type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword 修改密码，需要验证当前密码
func (h *Handler) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "未提供完整的密码信息")
		return
	}

	user, ok := h.currentUser(c, userID)
	if !ok {
		return
	}

	if !h.Repos.User.CheckPassword(user, req.CurrentPassword) {
		utils.BadRequest(c, "当前密码不正确")
		return
	}

	if err := h.Repos.User.UpdatePassword(user.ID, req.NewPassword); err != nil {
		log.Printf("[ChangePassword] 更新失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "密码修改成功", nil)
}

// UploadAvatar 上传头像
// 按 user_{id}_{时间戳}.png 落盘，返回相对路径和完整 URL
func (h *Handler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		utils.BadRequest(c, "未提供头像文件")
		return
	}

	user, ok := h.currentUser(c, userID)
	if !ok {
		return
	}

	uploadDir := filepath.Join(h.Config.UploadDir, "avatars")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("[UploadAvatar] 创建上传目录失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	filename := fmt.Sprintf("user_%d_%s.png", user.ID, time.Now().Format("20060102150405"))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		log.Printf("[UploadAvatar] 保存文件失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	relativeURL := "/static/avatars/" + filename
	if err := h.Repos.User.UpdateAvatar(user.ID, relativeURL); err != nil {
		log.Printf("[UploadAvatar] 更新头像失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "头像上传成功", gin.H{
		"avatar_url":   strings.TrimRight(h.Config.SiteUrl, "/") + relativeURL,
		"relative_url": relativeURL,
	})
}

// VerifyEmailReq 邮箱验证请求
type VerifyEmailReq struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyEmail 验证邮箱是否与当前账号匹配
func (h *Handler) VerifyEmail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "未提供邮箱")
		return
	}

	user, ok := h.currentUser(c, userID)
	if !ok {
		return
	}

	if user.Email != req.Email {
		utils.BadRequest(c, "邮箱与账号不匹配")
		return
	}

	utils.SuccessWithMessage(c, "邮箱验证成功", nil)
}

// currentUser 加载当前登录用户，不存在或查询失败时已写入错误响应
func (h *Handler) currentUser(c *gin.Context, userID int) (*model.User, bool) {
	user, err := h.Repos.User.FindByID(userID)
	if err != nil {
		log.Printf("[currentUser] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return nil, false
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return nil, false
	}
	return user, true
}
