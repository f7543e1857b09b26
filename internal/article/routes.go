package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/middleware"
)

// RegisterRoutes 设置文章相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	articleHandler := NewArticleHandler(db)

	// 文章路由 - 匿名可读
	articles := r.Group("/articles")
	{
		articles.GET("", articleHandler.ListArticles)    // 文章列表
		articles.GET("/:id", articleHandler.GetArticle)  // 文章详情
	}

	// 文章路由 - 需要认证
	articlesAuth := r.Group("/articles")
	articlesAuth.Use(middleware.JWTAuth())
	{
		articlesAuth.POST("", articleHandler.CreateArticle)       // 创建文章
		articlesAuth.PATCH("/:id", articleHandler.UpdateArticle)  // 更新文章（作者或管理员）
		articlesAuth.DELETE("/:id", articleHandler.DeleteArticle) // 删除文章（作者或管理员）
		articlesAuth.GET("/feed", articleHandler.Feed)            // 订阅流
		articlesAuth.GET("/feed/unread", articleHandler.FeedUnread) // 未读订阅流
	}

	// 阅读状态路由 - 需要认证，按文章ID定位
	readArticles := r.Group("/read_articles")
	readArticles.Use(middleware.JWTAuth())
	{
		readArticles.PATCH("/:article_id", articleHandler.SetReadState) // 标记已读/未读
	}
}
