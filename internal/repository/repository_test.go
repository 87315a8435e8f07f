package repository_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos 基于内存 sqlite 构造仓库集合
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	return repository.NewRepositories(db)
}

func mustCreateMovie(t *testing.T, repos *repository.Repositories, title, movieType, director string) *model.Movie {
	t.Helper()

	movie := &model.Movie{
		Title:     title,
		MovieType: movieType,
		Director:  director,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repos.Movie.Create(movie))
	return movie
}
