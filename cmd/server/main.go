package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/handler"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/router"
	"github.com/user/filmhub/internal/service"
	"github.com/user/filmhub/internal/utils"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化数据库（含幂等建表）
	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// 初始化仓库
	repos := repository.NewRepositories(db)

	// 初始化缓存
	utils.InitCache()

	// 写入演示数据
	if cfg.SeedData {
		if err := service.Seed(repos); err != nil {
			log.Fatalf("演示数据写入失败: %v", err)
		}
	}

	if cfg.DevAuthBypass {
		log.Println("【警告】开发认证旁路已开启，仅限本地调试使用")
	}

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 静态文件（头像）
	r.Static("/static", cfg.UploadDir)

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// 初始化 Handler
	h := handler.NewHandler(repos, cfg)

	// 注册路由
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}
