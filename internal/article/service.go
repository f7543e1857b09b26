package article

import (
	"errors"

	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/internal/model/article"
	"github.com/n1energy/wb-tech-blog/response"
)

type ArticleService struct {
	articleRepo *ArticleRepository
}

func NewArticleService(articleRepo *ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// canWrite 统一的写权限判定：staff 或文章作者本人
func canWrite(userID uint, isStaff bool, ownerID *uint) bool {
	if isStaff {
		return true
	}
	return ownerID != nil && *ownerID == userID
}

// buildOrder 把 ordering 查询参数映射为排序表达式
// 相同时间戳用 id 做次级排序，保证全序确定
func buildOrder(ordering string) string {
	switch ordering {
	case "created":
		return "created_at ASC, id ASC"
	case "-created":
		return "created_at DESC, id DESC"
	case "updated":
		return "updated_at ASC, id ASC"
	case "-updated":
		return "updated_at DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

// List 文章列表，默认按 created 降序
func (s *ArticleService) List(ordering string, page, pageSize int) (*dto.ArticleListResponse, *response.BusinessError) {
	offset := (page - 1) * pageSize
	articles, total, err := s.articleRepo.List(buildOrder(ordering), offset, pageSize)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取文章列表失败"),
			response.WithError(err),
		)
	}

	return &dto.ArticleListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Articles: articles,
	}, nil
}

// Get 按 ID 获取文章
func (s *ArticleService) Get(id uint) (*article.Article, *response.BusinessError) {
	art, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取文章失败"),
			response.WithError(err),
		)
	}
	return art, nil
}

// Create 创建文章，作者强制为当前用户
func (s *ArticleService) Create(req dto.CreateArticleRequest, userID uint) (*article.Article, *response.BusinessError) {
	art := &article.Article{
		UserID: &userID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := s.articleRepo.Create(art); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建文章失败"),
			response.WithError(err),
		)
	}

	return art, nil
}

// Update 部分更新，仅作者或 staff 可写
func (s *ArticleService) Update(id uint, req dto.UpdateArticleRequest, userID uint, isStaff bool) (*article.Article, *response.BusinessError) {
	art, berr := s.Get(id)
	if berr != nil {
		return nil, berr
	}

	if !canWrite(userID, isStaff, art.UserID) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有作者或管理员可以修改文章"),
		)
	}

	if req.Title != nil {
		art.Title = *req.Title
	}
	if req.Body != nil {
		art.Body = *req.Body
	}

	// Save 会刷新 UpdatedAt
	if err := s.articleRepo.Update(art); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新文章失败"),
			response.WithError(err),
		)
	}

	return art, nil
}

// Delete 删除文章，仅作者或 staff；阅读状态行由数据库级联删除
func (s *ArticleService) Delete(id uint, userID uint, isStaff bool) *response.BusinessError {
	art, berr := s.Get(id)
	if berr != nil {
		return berr
	}

	if !canWrite(userID, isStaff, art.UserID) {
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有作者或管理员可以删除文章"),
		)
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除文章失败"),
			response.WithError(err),
		)
	}

	return nil
}

// Feed 当前用户关注的作者发布的文章
func (s *ArticleService) Feed(userID uint) ([]article.Article, *response.BusinessError) {
	articles, err := s.articleRepo.ListFeed(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取订阅流失败"),
			response.WithError(err),
		)
	}
	return articles, nil
}

// FeedUnread 订阅流中未读的文章，恒为 Feed 的子集
func (s *ArticleService) FeedUnread(userID uint) ([]article.Article, *response.BusinessError) {
	articles, err := s.articleRepo.ListFeedUnread(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取未读订阅流失败"),
			response.WithError(err),
		)
	}
	return articles, nil
}

// SetReadState 设置当前用户对某篇文章的阅读状态
// 行不存在时隐式创建（fetch-or-create），文章不存在返回 NotFound
func (s *ArticleService) SetReadState(userID, articleID uint, isRead bool) (*article.ReadArticle, *response.BusinessError) {
	if _, berr := s.Get(articleID); berr != nil {
		return nil, berr
	}

	row, err := s.articleRepo.UpsertReadState(userID, articleID, isRead)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新阅读状态失败"),
			response.WithError(err),
		)
	}

	return row, nil
}
