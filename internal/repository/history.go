package repository

import (
	"errors"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Upsert 写入观影记录
// 同一 (user_id, movie_id) 已存在时原地更新进度和时间，单条语句完成，避免读写竞态
func (r *HistoryRepository) Upsert(h *model.WatchHistory) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watch_time", "progress"}),
	}).Create(h).Error
}

// Find 查找指定用户对指定电影的观影记录
func (r *HistoryRepository) Find(userID, movieID int) (*model.WatchHistory, error) {
	var h model.WatchHistory
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListByUser 获取用户观影历史，按时间倒序
func (r *HistoryRepository) ListByUser(userID int) ([]*model.WatchHistory, error) {
	var histories []*model.WatchHistory
	err := r.db.Where("user_id = ?", userID).
		Order("watch_time DESC").
		Find(&histories).Error
	return histories, err
}

// Delete 删除观影记录，只允许删除自己的记录
func (r *HistoryRepository) Delete(userID, id int) (bool, error) {
	result := r.db.Where("user_id = ? AND id = ?", userID, id).Delete(&model.WatchHistory{})
	return result.RowsAffected > 0, result.Error
}

// ClearByUser 清空用户的全部观影历史
func (r *HistoryRepository) ClearByUser(userID int) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.WatchHistory{}).Error
}

// CountByUser 统计用户观影历史数量
func (r *HistoryRepository) CountByUser(userID int) (int, error) {
	var count int64
	err := r.db.Model(&model.WatchHistory{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}
