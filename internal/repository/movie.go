package repository

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
	// 详情页访问集中在少量热门电影，用 LRU 挡一层
	detailCache *lru.Cache[int, *model.Movie]
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	cache, _ := lru.New[int, *model.Movie](256)
	return &MovieRepository{db: db, detailCache: cache}
}

// ListAll 获取所有电影
func (r *MovieRepository) ListAll() ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Order("id ASC").Find(&movies).Error
	return movies, err
}

// ListByType 按类型筛选电影（精确匹配分类名）
func (r *MovieRepository) ListByType(movieType string) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Where("movie_type = ?", movieType).Order("id ASC").Find(&movies).Error
	return movies, err
}

// Search 在标题、简介、导演、类型上做模糊搜索
// 空关键词直接返回空结果，不做全量查询
func (r *MovieRepository) Search(keyword string) ([]*model.Movie, error) {
	if keyword == "" {
		return []*model.Movie{}, nil
	}

	pattern := "%" + keyword + "%"
	var movies []*model.Movie
	err := r.db.Where(
		"title LIKE ? OR description LIKE ? OR director LIKE ? OR movie_type LIKE ?",
		pattern, pattern, pattern, pattern,
	).Find(&movies).Error
	return movies, err
}

// FindByID 根据 ID 查找电影，优先走 LRU 缓存
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	if movie, ok := r.detailCache.Get(id); ok {
		return movie, nil
	}

	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.detailCache.Add(id, &movie)
	return &movie, nil
}

// Create 创建电影
func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// FindByTitle 根据标题查找电影（种子数据去重用）
func (r *MovieRepository) FindByTitle(title string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Where("title = ?", title).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
