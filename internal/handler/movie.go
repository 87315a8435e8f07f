package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/utils"
)

// ListMovies 电影列表，支持 category_id 筛选
// 分类 ID 解析不出或不存在时返回全量列表，与前端的默认标签页行为一致
func (h *Handler) ListMovies(c *gin.Context) {
	var movieType string
	if raw := c.Query("category_id"); raw != "" {
		if categoryID, err := strconv.Atoi(raw); err == nil {
			category, err := h.Repos.Category.FindByID(categoryID)
			if err != nil {
				log.Printf("[ListMovies] 查询分类失败: %v", err)
				utils.InternalServerError(c, "")
				return
			}
			if category != nil {
				movieType = category.Name
			}
		}
	}

	var movies []*model.Movie
	var err error
	if movieType != "" {
		movies, err = h.Repos.Movie.ListByType(movieType)
	} else {
		movies, err = h.Repos.Movie.ListAll()
	}
	if err != nil {
		log.Printf("[ListMovies] 查询电影失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, model.MovieDTOs(movies))
}

// SearchMovies 电影搜索，空关键词返回空结果
func (h *Handler) SearchMovies(c *gin.Context) {
	keyword := c.Query("query")

	movies, err := h.Repos.Movie.Search(keyword)
	if err != nil {
		log.Printf("[SearchMovies] 搜索失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{
		"movies": model.MovieDTOs(movies),
		"total":  len(movies),
	})
}

// MovieDetail 电影详情
func (h *Handler) MovieDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的电影ID")
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		log.Printf("[MovieDetail] 查询电影失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if movie == nil {
		utils.NotFound(c, "电影不存在")
		return
	}

	utils.Success(c, movie.DetailDTO())
}
