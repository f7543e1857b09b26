package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/database"
)

// RegisterRoutes 设置认证相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, redisClient *database.RedisClient) {
	authHandler := NewAuthHandler(db, redisClient)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register) // 注册
		auth.POST("/login", authHandler.Login)       // 登录（获取令牌对）
		auth.POST("/refresh", authHandler.Refresh)   // 刷新令牌
	}
}
