package dto

import "github.com/n1energy/wb-tech-blog/internal/model/article"

// CreateArticleRequest 创建文章请求
// 作者永远取自认证上下文，请求体中的 user 字段会被忽略
type CreateArticleRequest struct {
	Title string `json:"title" binding:"required,max=100"`
	Body  string `json:"body" binding:"required"`
}

// UpdateArticleRequest 部分更新文章请求
type UpdateArticleRequest struct {
	Title *string `json:"title" binding:"omitempty,max=100"`
	Body  *string `json:"body"`
}

// ReadArticleRequest 更新阅读状态请求
type ReadArticleRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// ArticleListResponse 文章列表响应（分页）
type ArticleListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Articles []article.Article `json:"articles"`
}
