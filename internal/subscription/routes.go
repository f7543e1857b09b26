package subscription

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/middleware"
)

// RegisterRoutes 设置订阅相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	subscriptionHandler := NewSubscriptionHandler(db)

	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.JWTAuth())
	{
		subscriptions.GET("", subscriptionHandler.ListSubscriptions) // 我的订阅关系
		subscriptions.POST("", subscriptionHandler.Subscribe)        // 关注作者
		subscriptions.DELETE("/:id", subscriptionHandler.Unsubscribe) // 取消关注
	}
}
