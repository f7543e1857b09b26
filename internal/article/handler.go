package article

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/response"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	articleRepo := NewArticleRepository(db)

	return &ArticleHandler{
		articleService: NewArticleService(articleRepo),
	}
}

// parseID 解析路径中的数字 ID
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return 0, false
	}
	return uint(id), true
}

// ListArticles 获取文章列表
// @Summary 获取文章列表（分页，默认按创建时间降序）
// @Tags Article
// @Accept json
// @Produce json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Param ordering query string false "排序" Enums(created, -created, updated, -updated)
// @Success 200 {object} response.Response{data=dto.ArticleListResponse}
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	ordering := c.DefaultQuery("ordering", "-created")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, err := h.articleService.List(ordering, page, pageSize)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// GetArticle 获取文章详情
// @Summary 获取文章详情
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	art, err := h.articleService.Get(id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, art)
}

// CreateArticle 创建文章
// @Summary 创建文章（作者取自当前用户，请求中的 user 字段被忽略）
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 201 {object} response.Response
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	art, err := h.articleService.Create(req, userID.(uint))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, art)
}

// UpdateArticle 部分更新文章
// @Summary 更新文章（仅作者或管理员）
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.UpdateArticleRequest true "更新请求"
// @Success 200 {object} response.Response
// @Router /articles/{id} [patch]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	isStaff, _ := c.Get("is_staff")

	art, err := h.articleService.Update(id, req, userID.(uint), isStaff.(bool))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, art)
}

// DeleteArticle 删除文章
// @Summary 删除文章（仅作者或管理员），阅读状态级联删除
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 204
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID, _ := c.Get("user_id")
	isStaff, _ := c.Get("is_staff")

	if err := h.articleService.Delete(id, userID.(uint), isStaff.(bool)); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Feed 订阅流
// @Summary 当前用户关注的作者发布的文章，按创建时间降序
// @Tags Article
// @Produce json
// @Success 200 {object} response.Response
// @Router /articles/feed [get]
func (h *ArticleHandler) Feed(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.Feed(userID.(uint))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, articles)
}

// FeedUnread 未读订阅流
// @Summary 订阅流中尚未标记为已读的文章
// @Tags Article
// @Produce json
// @Success 200 {object} response.Response
// @Router /articles/feed/unread [get]
func (h *ArticleHandler) FeedUnread(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.FeedUnread(userID.(uint))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, articles)
}

// SetReadState 更新阅读状态
// @Summary 标记文章已读/未读（行不存在时隐式创建）
// @Tags Article
// @Accept json
// @Produce json
// @Param article_id path int true "文章ID"
// @Param request body dto.ReadArticleRequest true "阅读状态"
// @Success 200 {object} response.Response
// @Router /read_articles/{article_id} [patch]
func (h *ArticleHandler) SetReadState(c *gin.Context) {
	articleID, ok := parseID(c, "article_id")
	if !ok {
		return
	}

	var req dto.ReadArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	row, err := h.articleService.SetReadState(userID.(uint), articleID, *req.IsRead)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, row)
}
