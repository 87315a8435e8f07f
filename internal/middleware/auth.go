package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/utils"
)

// devMarker 开发环境客户端在 User-Agent 中携带的标记
const devMarker = "DEV"

// Claims JWT 声明
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Authenticator 认证策略，启动时注入，请求期间不再变更
type Authenticator interface {
	// Authenticate 从请求中解析用户 ID，失败返回错误
	Authenticate(c *gin.Context) (int, error)
}

// NewAuthenticator 根据配置选择认证策略
// 仅当 APP_ENV=development 且 DEV_AUTH_BYPASS=true 时才包上开发旁路
func NewAuthenticator(cfg *config.Config) Authenticator {
	var auth Authenticator = &jwtAuthenticator{secret: cfg.AppSecret}
	if cfg.DevAuthBypass {
		auth = &devBypassAuthenticator{next: auth, fallbackUserID: cfg.DevFallbackUserID}
	}
	return auth
}

// jwtAuthenticator 标准 Bearer Token 认证
type jwtAuthenticator struct {
	secret string
}

func (a *jwtAuthenticator) Authenticate(c *gin.Context) (int, error) {
	claims, err := extractClaims(c, a.secret)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// devBypassAuthenticator 开发旁路：认证失败且 User-Agent 带 DEV 标记时
// 放行并替换为固定的测试用户 ID，仅用于本地调试
type devBypassAuthenticator struct {
	next           Authenticator
	fallbackUserID int
}

func (a *devBypassAuthenticator) Authenticate(c *gin.Context) (int, error) {
	userID, err := a.next.Authenticate(c)
	if err != nil && strings.Contains(c.GetHeader("User-Agent"), devMarker) {
		return a.fallbackUserID, nil
	}
	return userID, err
}

// RequireAuth 必须登录中间件
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.Authenticate(c)
		if err != nil {
			utils.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// extractClaims 从 Authorization Header 中提取 JWT Claims
func extractClaims(c *gin.Context, jwtSecret string) (*Claims, error) {
	var tokenString string

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	// 解析 Token
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GetUserID 从上下文获取用户 ID（未登录返回 0）
func GetUserID(c *gin.Context) int {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(int)
	}
	return 0
}

// GenerateToken 生成 JWT Token，subject 为用户 ID
func GenerateToken(userID int, jwtSecret string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
