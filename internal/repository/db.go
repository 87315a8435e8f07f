package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/user/filmhub/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接并建表
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 孤儿历史记录是已接受的现状，不建外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm 初始化失败: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("建表失败: %w", err)
	}

	return db, nil
}

// Migrate 幂等建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Category{},
		&model.WatchHistory{},
		&model.SearchHistory{},
		&model.MovieRanking{},
	)
}

// Repositories 仓库集合
type Repositories struct {
	DB            *gorm.DB
	User          *UserRepository
	Movie         *MovieRepository
	Category      *CategoryRepository
	History       *HistoryRepository
	SearchHistory *SearchHistoryRepository
	Ranking       *RankingRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:            db,
		User:          NewUserRepository(db),
		Movie:         NewMovieRepository(db),
		Category:      NewCategoryRepository(db),
		History:       NewHistoryRepository(db),
		SearchHistory: NewSearchHistoryRepository(db),
		Ranking:       NewRankingRepository(db),
	}
}
