package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/utils"
)

// GetSearchHistory 获取搜索历史，最近 7 天内最多 8 条，按时间倒序
func (h *Handler) GetSearchHistory(c *gin.Context) {
	userID, ok := h.userIDFromQuery(c)
	if !ok {
		return
	}

	histories, err := h.Repos.SearchHistory.ListRecent(userID)
	if err != nil {
		log.Printf("[GetSearchHistory] 查询搜索历史失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, histories)
}

// AddSearchHistoryReq 写搜索记录请求
type AddSearchHistoryReq struct {
	UserID      int    `json:"user_id" binding:"required"`
	SearchQuery string `json:"search_query" binding:"required"`
}

// AddSearchHistory 写入搜索记录，重复关键词只刷新时间
func (h *Handler) AddSearchHistory(c *gin.Context) {
	var req AddSearchHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不完整")
		return
	}

	if err := h.Repos.SearchHistory.Upsert(req.UserID, req.SearchQuery); err != nil {
		log.Printf("[AddSearchHistory] 保存搜索记录失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "搜索记录已保存", nil)
}

// DeleteSearchHistory 删除单条搜索记录
func (h *Handler) DeleteSearchHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的记录ID")
		return
	}

	deleted, err := h.Repos.SearchHistory.Delete(id)
	if err != nil {
		log.Printf("[DeleteSearchHistory] 删除失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if !deleted {
		utils.NotFound(c, "搜索记录不存在")
		return
	}

	utils.SuccessWithMessage(c, "搜索记录已删除", nil)
}

// ClearSearchHistory 清空指定用户的搜索历史
func (h *Handler) ClearSearchHistory(c *gin.Context) {
	userID, ok := h.userIDFromQuery(c)
	if !ok {
		return
	}

	if err := h.Repos.SearchHistory.ClearByUser(userID); err != nil {
		log.Printf("[ClearSearchHistory] 清空失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "搜索历史已清空", nil)
}

// GetRankings 电影排行榜，rank 升序前 8 名，带电影详情
func (h *Handler) GetRankings(c *gin.Context) {
	rankings, err := h.Rankings.Top()
	if err != nil {
		log.Printf("[GetRankings] 查询排行榜失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, rankings)
}

// userIDFromQuery 解析 user_id 查询参数，失败时已写入错误响应
func (h *Handler) userIDFromQuery(c *gin.Context) (int, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		utils.BadRequest(c, "用户ID不能为空")
		return 0, false
	}

	userID, err := strconv.Atoi(raw)
	if err != nil {
		utils.BadRequest(c, "无效的用户ID")
		return 0, false
	}

	return userID, true
}
