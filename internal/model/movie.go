package model

import (
	"time"
)

// Movie 电影模型
type Movie struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	ReleaseDate *time.Time `json:"release_date" db:"release_date"`
	MovieType   string     `json:"movie_type" db:"movie_type" gorm:"index"`
	PosterURL   string     `json:"poster_url" db:"poster_url"`
	Director    string     `json:"director" db:"director"`
	Rating      float64    `json:"rating" db:"rating"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Category 电影分类，通过 movie_type = name 与电影关联
type Category struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name" gorm:"unique"`
	Description string `json:"description" db:"description"`
}

// MovieDTO 电影列表项响应结构
type MovieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ReleaseDate *string `json:"release_date"`
	MovieType   string  `json:"movie_type"`
	PosterURL   string  `json:"poster_url"`
	Director    string  `json:"director"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// DTO 转换为列表响应结构（不含时间戳）
func (m *Movie) DTO() *MovieDTO {
	dto := &MovieDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		MovieType:   m.MovieType,
		PosterURL:   m.PosterURL,
		Director:    m.Director,
		Rating:      m.Rating,
	}
	if m.ReleaseDate != nil {
		s := m.ReleaseDate.Format("2006-01-02")
		dto.ReleaseDate = &s
	}
	return dto
}

// DetailDTO 转换为详情响应结构（含时间戳）
func (m *Movie) DetailDTO() *MovieDTO {
	dto := m.DTO()
	dto.CreatedAt = m.CreatedAt.Format("2006-01-02 15:04:05")
	dto.UpdatedAt = m.UpdatedAt.Format("2006-01-02 15:04:05")
	return dto
}

// MovieDTOs 批量转换
func MovieDTOs(movies []*Movie) []*MovieDTO {
	dtos := make([]*MovieDTO, 0, len(movies))
	for _, m := range movies {
		dtos = append(dtos, m.DTO())
	}
	return dtos
}
