package handler

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/utils"
)

// ListHistory 获取当前用户的观影历史，按时间倒序
func (h *Handler) ListHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	histories, err := h.Repos.History.ListByUser(userID)
	if err != nil {
		log.Printf("[ListHistory] 查询观影历史失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	data := make([]*model.WatchHistoryDTO, 0, len(histories))
	for _, item := range histories {
		movie, err := h.Repos.Movie.FindByID(item.MovieID)
		if err != nil {
			log.Printf("[ListHistory] 查询电影失败: %v", err)
			continue
		}
		// 电影已下架的记录不展示
		if movie == nil {
			continue
		}

		data = append(data, &model.WatchHistoryDTO{
			ID:        item.ID,
			MovieID:   item.MovieID,
			Title:     movie.Title,
			PosterURL: movie.PosterURL,
			WatchTime: item.WatchTime.Format(time.RFC3339),
			Progress:  item.Progress,
		})
	}

	utils.Success(c, data)
}

// AddHistoryReq 写观影记录请求
type AddHistoryReq struct {
	MovieID  int     `json:"movie_id" binding:"required"`
	Progress float64 `json:"progress" binding:"gte=0,lte=100"`
}

// AddHistory 写入观影记录
// 同一 (用户, 电影) 只保留一条，重复写入原地更新进度和时间
func (h *Handler) AddHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "未提供电影ID")
		return
	}

	movie, err := h.Repos.Movie.FindByID(req.MovieID)
	if err != nil {
		log.Printf("[AddHistory] 查询电影失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if movie == nil {
		utils.NotFound(c, "电影不存在")
		return
	}

	record := &model.WatchHistory{
		UserID:    userID,
		MovieID:   req.MovieID,
		WatchTime: time.Now(),
		Progress:  req.Progress,
	}
	if err := h.Repos.History.Upsert(record); err != nil {
		log.Printf("[AddHistory] 保存观影记录失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	// upsert 命中已有行时拿不到行 ID，回查一次
	saved, err := h.Repos.History.Find(userID, req.MovieID)
	if err != nil || saved == nil {
		log.Printf("[AddHistory] 回查观影记录失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "观看记录已保存", gin.H{
		"id":         saved.ID,
		"movie_id":   saved.MovieID,
		"watch_time": saved.WatchTime.Format(time.RFC3339),
		"progress":   saved.Progress,
	})
}

// DeleteHistory 删除单条观影记录，只能删除自己的
func (h *Handler) DeleteHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的记录ID")
		return
	}

	deleted, err := h.Repos.History.Delete(userID, id)
	if err != nil {
		log.Printf("[DeleteHistory] 删除失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if !deleted {
		utils.NotFound(c, "记录不存在或无权限删除")
		return
	}

	utils.SuccessWithMessage(c, "记录已删除", nil)
}

// ClearHistory 清空当前用户的观影历史
func (h *Handler) ClearHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.Repos.History.ClearByUser(userID); err != nil {
		log.Printf("[ClearHistory] 清空失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "观看历史已清空", nil)
}
