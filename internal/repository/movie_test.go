package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

func seedMovies(t *testing.T, repos *repository.Repositories) {
	t.Helper()
	mustCreateMovie(t, repos, "星际穿越", "科幻", "诺兰")
	mustCreateMovie(t, repos, "盗梦空间", "科幻", "诺兰")
	mustCreateMovie(t, repos, "功夫", "喜剧", "周星驰")
}

func TestMovieSearchEmptyQueryReturnsNothing(t *testing.T) {
	repos := newTestRepos(t)
	seedMovies(t, repos)

	movies, err := repos.Movie.Search("")
	require.NoError(t, err)
	assert.Empty(t, movies, "空关键词不应返回全量数据")
}

func TestMovieSearchMatchesAllFields(t *testing.T) {
	repos := newTestRepos(t)
	seedMovies(t, repos)

	// 标题命中
	movies, err := repos.Movie.Search("星际")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "星际穿越", movies[0].Title)

	// 导演命中，OR 合并
	movies, err = repos.Movie.Search("诺兰")
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	// 类型命中
	movies, err = repos.Movie.Search("喜剧")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "功夫", movies[0].Title)

	// 无命中
	movies, err = repos.Movie.Search("不存在的关键词")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieListByType(t *testing.T) {
	repos := newTestRepos(t)
	seedMovies(t, repos)

	movies, err := repos.Movie.ListByType("科幻")
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	all, err := repos.Movie.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMovieFindByID(t *testing.T) {
	repos := newTestRepos(t)
	created := mustCreateMovie(t, repos, "功夫", "喜剧", "周星驰")

	movie, err := repos.Movie.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "功夫", movie.Title)

	// 第二次命中 LRU 缓存，结果一致
	cached, err := repos.Movie.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, movie, cached)

	missing, err := repos.Movie.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryListAndFind(t *testing.T) {
	repos := newTestRepos(t)

	require.NoError(t, repos.Category.Create(&model.Category{Name: "科幻", Description: "科幻题材电影"}))
	require.NoError(t, repos.Category.Create(&model.Category{Name: "喜剧", Description: "喜剧电影"}))

	categories, err := repos.Category.ListAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	found, err := repos.Category.FindByID(categories[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, categories[0].Name, found.Name)

	missing, err := repos.Category.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byName, err := repos.Category.FindByName("喜剧")
	require.NoError(t, err)
	require.NotNil(t, byName)
}
