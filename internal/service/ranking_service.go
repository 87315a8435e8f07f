package service

import (
	"time"

	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/utils"
	"golang.org/x/sync/singleflight"
)

// 排行榜固定取前 8 名
const rankingLimit = 8

const rankingCacheKey = "rankings:top"

// RankingService 排行榜服务
type RankingService struct {
	rankings *repository.RankingRepository
	sf       singleflight.Group
}

// NewRankingService 创建排行榜服务
func NewRankingService(rankings *repository.RankingRepository) *RankingService {
	return &RankingService{rankings: rankings}
}

// Top 获取排行榜前 8 名，带电影详情
// 结果缓存 5 分钟，缓存未命中时用 singleflight 合并并发回源
func (s *RankingService) Top() ([]*model.RankingDTO, error) {
	if cached, found := utils.CacheGet(rankingCacheKey); found {
		if dtos, ok := cached.([]*model.RankingDTO); ok {
			return dtos, nil
		}
	}

	val, err, _ := s.sf.Do(rankingCacheKey, func() (interface{}, error) {
		rankings, err := s.rankings.ListTop(rankingLimit)
		if err != nil {
			return nil, err
		}

		dtos := make([]*model.RankingDTO, 0, len(rankings))
		for _, r := range rankings {
			dtos = append(dtos, r.DTO())
		}

		utils.CacheSet(rankingCacheKey, dtos, 5*time.Minute)
		return dtos, nil
	})
	if err != nil {
		return nil, err
	}

	return val.([]*model.RankingDTO), nil
}
