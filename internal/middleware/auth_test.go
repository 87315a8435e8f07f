package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/middleware"
)

const testSecret = "test-secret"

func testContext(t *testing.T, token, userAgent string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	if userAgent != "" {
		c.Request.Header.Set("User-Agent", userAgent)
	}
	return c
}

func TestTokenRoundTrip(t *testing.T) {
	auth := middleware.NewAuthenticator(&config.Config{AppSecret: testSecret})

	token, err := middleware.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	userID, err := auth.Authenticate(testContext(t, token, ""))
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenRejected(t *testing.T) {
	auth := middleware.NewAuthenticator(&config.Config{AppSecret: testSecret})

	// 缺失
	_, err := auth.Authenticate(testContext(t, "", ""))
	assert.Error(t, err)

	// 乱码
	_, err = auth.Authenticate(testContext(t, "not-a-token", ""))
	assert.Error(t, err)

	// 过期
	expired, err := middleware.GenerateToken(42, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = auth.Authenticate(testContext(t, expired, ""))
	assert.Error(t, err)

	// 密钥不匹配
	forged, err := middleware.GenerateToken(42, "other-secret", time.Hour)
	require.NoError(t, err)
	_, err = auth.Authenticate(testContext(t, forged, ""))
	assert.Error(t, err)
}

func TestDevBypass(t *testing.T) {
	cfg := &config.Config{
		AppSecret:         testSecret,
		DevAuthBypass:     true,
		DevFallbackUserID: 7,
	}
	auth := middleware.NewAuthenticator(cfg)

	// 无 Token 但 User-Agent 带 DEV 标记，放行为测试用户
	userID, err := auth.Authenticate(testContext(t, "", "Mozilla/5.0 DEV"))
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	// 无标记仍然拒绝
	_, err = auth.Authenticate(testContext(t, "", "Mozilla/5.0"))
	assert.Error(t, err)

	// 合法 Token 不受旁路影响
	token, err := middleware.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	userID, err = auth.Authenticate(testContext(t, token, "Mozilla/5.0 DEV"))
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestDevBypassDisabledByDefault(t *testing.T) {
	auth := middleware.NewAuthenticator(&config.Config{AppSecret: testSecret})

	_, err := auth.Authenticate(testContext(t, "", "Mozilla/5.0 DEV"))
	assert.Error(t, err, "未显式开启时 DEV 标记无效")
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthenticator(&config.Config{AppSecret: testSecret})

	r := gin.New()
	r.GET("/protected", middleware.RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})

	// 无 Token
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 有效 Token
	token, err := middleware.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}
