package handler

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/utils"
)

const categoryCacheKey = "categories:all"

// ListCategories 分类列表，分类基本不变，缓存 5 分钟
func (h *Handler) ListCategories(c *gin.Context) {
	if cached, found := utils.CacheGet(categoryCacheKey); found {
		if categories, ok := cached.([]*model.Category); ok {
			utils.Success(c, categories)
			return
		}
	}

	categories, err := h.Repos.Category.ListAll()
	if err != nil {
		log.Printf("[ListCategories] 查询分类失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.CacheSet(categoryCacheKey, categories, 5*time.Minute)
	utils.Success(c, categories)
}

// CategoryDetail 分类详情
func (h *Handler) CategoryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的分类ID")
		return
	}

	category, err := h.Repos.Category.FindByID(id)
	if err != nil {
		log.Printf("[CategoryDetail] 查询分类失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if category == nil {
		utils.NotFound(c, "分类不存在")
		return
	}

	utils.Success(c, category)
}
