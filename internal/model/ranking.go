package model

import (
	"time"
)

// MovieRanking 电影排行，rank 由种子数据维护，不强制唯一
type MovieRanking struct {
	ID          int       `json:"id" db:"id"`
	MovieID     int       `json:"movie_id" db:"movie_id"`
	Rank        int       `json:"rank" db:"rank" gorm:"column:rank;index"`
	Views       int       `json:"views" db:"views"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
	Movie       *Movie    `json:"-" gorm:"foreignKey:MovieID"`
}

// RankingDTO 排行响应结构，电影被删除时 movie 为 null
type RankingDTO struct {
	ID      int       `json:"id"`
	MovieID int       `json:"movie_id"`
	Rank    int       `json:"rank"`
	Views   int       `json:"views"`
	Movie   *MovieDTO `json:"movie"`
}

// DTO 转换为响应结构
func (r *MovieRanking) DTO() *RankingDTO {
	dto := &RankingDTO{
		ID:      r.ID,
		MovieID: r.MovieID,
		Rank:    r.Rank,
		Views:   r.Views,
	}
	if r.Movie != nil {
		dto.Movie = r.Movie.DTO()
	}
	return dto
}
