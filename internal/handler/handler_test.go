package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/handler"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/router"
	"github.com/user/filmhub/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope 统一响应结构
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router *gin.Engine
	repos  *repository.Repositories
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	repos := repository.NewRepositories(db)
	utils.InitCache()

	cfg := &config.Config{
		Env:       "test",
		AppSecret: "test-secret",
		JWTExpiry: time.Hour,
		SiteUrl:   "http://localhost:5000",
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	router.RegisterRoutes(r, handler.NewHandler(repos, cfg))

	return &testServer{router: r, repos: repos, cfg: cfg}
}

// do 发送请求并解析响应信封
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "响应必须是统一信封: %s", w.Body.String())
	return w.Code, env
}

// registerAndLogin 注册并登录，返回 token 和用户 ID
func (s *testServer) registerAndLogin(t *testing.T, username, email, password string) (string, int) {
	t.Helper()

	code, _ := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code)

	code, env := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Token  string `json:"token"`
		UserID int    `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token, data.UserID
}
