package repository

import (
	"time"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

type RankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// ListTop 获取排行榜，按 rank 升序取前 limit 条并带出电影详情
// 电影已被删除时 Movie 保持为 nil
func (r *RankingRepository) ListTop(limit int) ([]*model.MovieRanking, error) {
	var rankings []*model.MovieRanking
	err := r.db.Preload("Movie").
		Order("rank ASC").
		Limit(limit).
		Find(&rankings).Error
	return rankings, err
}

// Replace 重建指定电影的排行条目（种子数据用）
func (r *RankingRepository) Replace(movieID, rank, views int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movieID).Delete(&model.MovieRanking{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.MovieRanking{
			MovieID:     movieID,
			Rank:        rank,
			Views:       views,
			LastUpdated: time.Now(),
		}).Error
	})
}
