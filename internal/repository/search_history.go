package repository

import (
	"time"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 搜索历史列表的窗口：最近 7 天，最多 8 条
const (
	searchHistoryWindow = 7 * 24 * time.Hour
	searchHistoryLimit  = 8
)

type SearchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Upsert 写入搜索记录
// 同一用户重复搜索同一关键词时只刷新时间，不产生新行
func (r *SearchHistoryRepository) Upsert(userID int, query string) error {
	h := &model.SearchHistory{
		UserID:      userID,
		SearchQuery: query,
		CreatedAt:   time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "search_query"}},
		DoUpdates: clause.AssignmentColumns([]string{"created_at"}),
	}).Create(h).Error
}

// ListRecent 获取用户最近的搜索记录，7 天窗口内按时间倒序最多 8 条
func (r *SearchHistoryRepository) ListRecent(userID int) ([]*model.SearchHistory, error) {
	var histories []*model.SearchHistory
	err := r.db.Where("user_id = ? AND created_at >= ?", userID, time.Now().Add(-searchHistoryWindow)).
		Order("created_at DESC").
		Limit(searchHistoryLimit).
		Find(&histories).Error
	return histories, err
}

// Delete 删除单条搜索记录
func (r *SearchHistoryRepository) Delete(id int) (bool, error) {
	result := r.db.Delete(&model.SearchHistory{}, id)
	return result.RowsAffected > 0, result.Error
}

// ClearByUser 清空用户的全部搜索历史
func (r *SearchHistoryRepository) ClearByUser(userID int) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.SearchHistory{}).Error
}
