package service

import (
	"log"
	"time"

	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// Seed 写入演示数据（分类、电影、排行榜），按名称去重，可重复执行
func Seed(repos *repository.Repositories) error {
	categories := []model.Category{
		{Name: "动作", Description: "动作冒险电影"},
		{Name: "喜剧", Description: "轻松幽默的喜剧片"},
		{Name: "科幻", Description: "科幻题材电影"},
		{Name: "剧情", Description: "剧情类电影"},
		{Name: "动画", Description: "动画电影"},
	}

	for i := range categories {
		existing, err := repos.Category.FindByName(categories[i].Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := repos.Category.Create(&categories[i]); err != nil {
			return err
		}
	}

	movies := []model.Movie{
		{Title: "星际穿越", Description: "一组宇航员穿越虫洞为人类寻找新家园", MovieType: "科幻", Director: "克里斯托弗·诺兰", Rating: 9.4, ReleaseDate: date(2014, 11, 12)},
		{Title: "让子弹飞", Description: "北洋年间一场县城里的较量", MovieType: "喜剧", Director: "姜文", Rating: 9.0, ReleaseDate: date(2010, 12, 16)},
		{Title: "疯狂的麦克斯4", Description: "末日废土上的公路追逐", MovieType: "动作", Director: "乔治·米勒", Rating: 8.6, ReleaseDate: date(2015, 5, 15)},
		{Title: "千与千寻", Description: "少女误入神灵世界的冒险", MovieType: "动画", Director: "宫崎骏", Rating: 9.4, ReleaseDate: date(2001, 7, 20)},
		{Title: "肖申克的救赎", Description: "被冤狱的银行家用二十年挖通自由之路", MovieType: "剧情", Director: "弗兰克·德拉邦特", Rating: 9.7, ReleaseDate: date(1994, 9, 10)},
		{Title: "盗梦空间", Description: "在层层梦境中植入一个念头", MovieType: "科幻", Director: "克里斯托弗·诺兰", Rating: 9.4, ReleaseDate: date(2010, 9, 1)},
		{Title: "功夫", Description: "小人物在猪笼城寨的武林奇遇", MovieType: "喜剧", Director: "周星驰", Rating: 8.8, ReleaseDate: date(2004, 12, 23)},
		{Title: "谍影重重", Description: "失忆特工追寻自己的身份", MovieType: "动作", Director: "道格·里曼", Rating: 8.6, ReleaseDate: date(2002, 6, 14)},
	}

	now := time.Now()
	rank := 1
	for i := range movies {
		existing, err := repos.Movie.FindByTitle(movies[i].Title)
		if err != nil {
			return err
		}

		var movieID int
		if existing != nil {
			movieID = existing.ID
		} else {
			movies[i].CreatedAt = now
			movies[i].UpdatedAt = now
			if err := repos.Movie.Create(&movies[i]); err != nil {
				return err
			}
			movieID = movies[i].ID
		}

		// 排行榜按评分外的固定顺序写入，重复执行时整条重建
		if err := repos.Ranking.Replace(movieID, rank, (9-rank)*1000); err != nil {
			return err
		}
		rank++
	}

	log.Printf("[Seed] 演示数据就绪：%d 个分类，%d 部电影", len(categories), len(movies))
	return nil
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
