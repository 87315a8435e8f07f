package model

import (
	"time"
)

// WatchHistory 观影历史，(user_id, movie_id) 唯一，重复写入走 upsert
type WatchHistory struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_user_movie"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_user_movie"`
	WatchTime time.Time `json:"watch_time" db:"watch_time"`
	Progress  float64   `json:"progress" db:"progress"` // 观看进度，百分比(0-100)
}

// SearchHistory 搜索历史，(user_id, search_query) 唯一，重复搜索刷新时间
type SearchHistory struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_user_query"`
	SearchQuery string    `json:"search_query" db:"search_query" gorm:"uniqueIndex:idx_user_query"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// WatchHistoryDTO 观影历史响应结构，附带电影标题与海报
type WatchHistoryDTO struct {
	ID        int     `json:"id"`
	MovieID   int     `json:"movie_id"`
	Title     string  `json:"title"`
	PosterURL string  `json:"poster_url"`
	WatchTime string  `json:"watch_time"`
	Progress  float64 `json:"progress"`
}
