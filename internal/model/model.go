package model

import (
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/model/article"
	"github.com/n1energy/wb-tech-blog/internal/model/subscription"
	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章与阅读状态
		&article.Article{},
		&article.ReadArticle{},
		// 订阅关系
		&subscription.SubscriptionUser{},
	)
	if err != nil {
		return err
	}
	return nil
}
