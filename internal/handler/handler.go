package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Auth     middleware.Authenticator
	Rankings *service.RankingService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	registerValidations()

	return &Handler{
		Repos:    repos,
		Config:   cfg,
		Auth:     middleware.NewAuthenticator(cfg),
		Rankings: service.NewRankingService(repos.Ranking),
	}
}

// 用户名：2-32 个非空白字符
var usernameRe = regexp.MustCompile(`^[^\s]{2,32}$`)

// registerValidations 注册自定义校验规则
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	}
}
