package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEnvelopeAndDuplicate(t *testing.T) {
	s := newTestServer(t)

	body := gin.H{"username": "bob", "email": "b@x.com", "password": "pw"}

	code, env := s.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "bob", data["username"])
	assert.Equal(t, "b@x.com", data["email"])
	assert.NotContains(t, data, "password", "响应不能带密码字段")
	assert.NotContains(t, data, "password_hash")

	// 完全相同的第二次注册
	code, env = s.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Message)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	// 缺字段
	code, env := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)

	// 非法邮箱
	code, _ = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob", "email": "not-an-email", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// 邮箱重复但用户名不同
	_, _ = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob", "email": "b@x.com", "password": "pw",
	})
	code, env = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "b@x.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestServer(t)
	token, userID := s.registerAndLogin(t, "bob", "b@x.com", "secret123")

	// token 可以通过认证
	code, env := s.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	var profile struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "b@x.com", profile.Email)
}

func TestLoginRejected(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "bob", "b@x.com", "secret123")

	// 密码错误
	code, env := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bob", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", env.Status)

	// 用户不存在
	code, _ = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProfileRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", env.Status)

	code, _ = s.do(t, http.MethodGet, "/api/auth/profile", "garbled-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
