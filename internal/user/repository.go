package user

import (
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/model/subscription"
	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

// ProfileRow 用户加文章数的联查结果
type ProfileRow struct {
	user.User
	NumArticles int64 `gorm:"column:num_articles"`
}

// UserRepository 用户档案数据访问层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListWithArticleCount 用户列表，LEFT JOIN 统计每人的文章数
// order 必须是 buildOrder 产出的白名单排序表达式
func (r *UserRepository) ListWithArticleCount(order string, offset, limit int) ([]ProfileRow, int64, error) {
	var rows []ProfileRow
	var total int64

	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&user.User{}).
		Select("users.*, count(articles.id) AS num_articles").
		Joins("LEFT JOIN articles ON articles.user_id = users.id").
		Group("users.id").
		Order(order).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

// GetWithArticleCount 单个用户档案
func (r *UserRepository) GetWithArticleCount(id uint) (*ProfileRow, error) {
	var row ProfileRow
	err := r.db.Model(&user.User{}).
		Select("users.*, count(articles.id) AS num_articles").
		Joins("LEFT JOIN articles ON articles.user_id = users.id").
		Where("users.id = ?", id).
		Group("users.id").
		First(&row).Error
	return &row, err
}

// GetFollowers 关注该用户的订阅记录
func (r *UserRepository) GetFollowers(userID uint) ([]subscription.SubscriptionUser, error) {
	var subs []subscription.SubscriptionUser
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&subs).Error
	return subs, err
}

// GetFollowing 该用户发起的订阅记录
func (r *UserRepository) GetFollowing(userID uint) ([]subscription.SubscriptionUser, error) {
	var subs []subscription.SubscriptionUser
	err := r.db.Where("subscriber_id = ?", userID).Order("id ASC").Find(&subs).Error
	return subs, err
}
