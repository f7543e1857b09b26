package article

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/n1energy/wb-tech-blog/internal/model/article"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ===== Article 基础操作 =====

func (r *ArticleRepository) GetByID(id uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, id).Error
	return &art, err
}

func (r *ArticleRepository) Create(art *article.Article) error {
	return r.db.Create(art).Error
}

func (r *ArticleRepository) Update(art *article.Article) error {
	return r.db.Save(art).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&article.Article{}, id).Error
}

// List 文章列表（分页）
// order 必须是 buildOrder 产出的白名单排序表达式
func (r *ArticleRepository) List(order string, offset, limit int) ([]article.Article, int64, error) {
	var articles []article.Article
	var total int64

	query := r.db.Model(&article.Article{})

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Order(order).Offset(offset).Limit(limit).Find(&articles).Error
	return articles, total, err
}

// ===== 订阅流查询 =====

// ListFeed 订阅流：当前用户关注的作者发布的文章，created 降序，id 做稳定的次级排序
func (r *ArticleRepository) ListFeed(subscriberID uint) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.
		Joins("JOIN subscription_users ON subscription_users.user_id = articles.user_id").
		Where("subscription_users.subscriber_id = ?", subscriberID).
		Order("articles.created_at DESC, articles.id DESC").
		Find(&articles).Error
	return articles, err
}

// ListFeedUnread 订阅流中未读的文章
// 未读 = 没有阅读状态行，或者阅读状态行 is_read = false
func (r *ArticleRepository) ListFeedUnread(subscriberID uint) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.
		Joins("JOIN subscription_users ON subscription_users.user_id = articles.user_id").
		Joins("LEFT JOIN read_articles ON read_articles.article_id = articles.id AND read_articles.user_id = ?", subscriberID).
		Where("subscription_users.subscriber_id = ?", subscriberID).
		Where("read_articles.id IS NULL OR read_articles.is_read = ?", false).
		Order("articles.created_at DESC, articles.id DESC").
		Find(&articles).Error
	return articles, err
}

// ===== 阅读状态 =====

// UpsertReadState 原子化的 fetch-or-create + 更新
// 单条 ON CONFLICT 语句，并发下不会产生重复的 (user, article) 行
func (r *ArticleRepository) UpsertReadState(userID, articleID uint, isRead bool) (*article.ReadArticle, error) {
	row := &article.ReadArticle{
		UserID:    userID,
		ArticleID: articleID,
		IsRead:    isRead,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_read": isRead}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetReadState 查询阅读状态行，不存在时返回 gorm.ErrRecordNotFound
func (r *ArticleRepository) GetReadState(userID, articleID uint) (*article.ReadArticle, error) {
	var row article.ReadArticle
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&row).Error
	return &row, err
}
