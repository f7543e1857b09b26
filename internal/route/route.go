package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/n1energy/wb-tech-blog/internal/article"
	"github.com/n1energy/wb-tech-blog/internal/auth"
	"github.com/n1energy/wb-tech-blog/internal/database"
	"github.com/n1energy/wb-tech-blog/internal/subscription"
	"github.com/n1energy/wb-tech-blog/internal/user"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()

	// API 路由组
	api := r.Group("/api")
	{
		auth.RegisterRoutes(api, db, database.RedisDB)
		article.RegisterRoutes(api, db)
		user.RegisterRoutes(api, db)
		subscription.RegisterRoutes(api, db)
	}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// 允许多个前端端口
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	// 如果设置了环境变量，添加到允许列表
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
