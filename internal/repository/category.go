package repository

import (
	"errors"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll 获取所有分类
func (r *CategoryRepository) ListAll() ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

// FindByID 根据 ID 查找分类
func (r *CategoryRepository) FindByID(id int) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName 根据名称查找分类（种子数据去重用）
func (r *CategoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create 创建分类
func (r *CategoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}
