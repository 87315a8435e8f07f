package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/utils"
)

// RegisterReq 注册请求
type RegisterReq struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "用户名、密码和邮箱不能为空")
		return
	}

	// 先查重，给出具体的冲突原因
	if existing, err := h.Repos.User.FindByUsername(req.Username); err != nil {
		log.Printf("[Register] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	} else if existing != nil {
		utils.BadRequest(c, "用户名已存在")
		return
	}

	if existing, err := h.Repos.User.FindByEmail(req.Email); err != nil {
		log.Printf("[Register] 查询邮箱失败: %v", err)
		utils.InternalServerError(c, "")
		return
	} else if existing != nil {
		utils.BadRequest(c, "邮箱已被注册")
		return
	}

	user, err := h.Repos.User.Create(req.Username, req.Email, req.Password)
	if err != nil {
		// 查重和写入之间仍可能撞上唯一约束
		if err == repository.ErrDuplicate {
			utils.BadRequest(c, "用户名或邮箱已被注册")
			return
		}
		log.Printf("[Register] 创建用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("[Register] 生成 Token 失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "注册成功", gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// LoginReq 登录请求
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录，返回 JWT Token
func (h *Handler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "用户名和密码不能为空")
		return
	}

	user, err := h.Repos.User.FindByUsername(req.Username)
	if err != nil {
		log.Printf("[Login] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("[Login] 生成 Token 失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// Profile 获取当前登录用户信息
func (h *Handler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.Repos.User.FindByID(userID)
	if err != nil {
		log.Printf("[Profile] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}

	utils.Success(c, user.DTO())
}
