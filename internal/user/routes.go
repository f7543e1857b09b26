package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/middleware"
)

// RegisterRoutes 设置用户相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	userHandler := NewUserHandler(db)

	// 用户路由 - 匿名可读；携带令牌时 /users/current 解析为本人
	users := r.Group("/users")
	users.Use(middleware.OptionalJWTAuth())
	{
		users.GET("", userHandler.ListUsers)    // 用户列表（带文章数统计）
		users.GET("/:id", userHandler.GetUser)  // 用户档案，:id 支持 current
	}
}
