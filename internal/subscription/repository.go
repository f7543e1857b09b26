package subscription

import (
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/model/subscription"
	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

// SubscriptionRepository 订阅关系仓储层
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) GetByID(id uint) (*subscription.SubscriptionUser, error) {
	var sub subscription.SubscriptionUser
	err := r.db.First(&sub, id).Error
	return &sub, err
}

// Create 唯一索引冲突时返回 gorm.ErrDuplicatedKey（TranslateError 开启）
func (r *SubscriptionRepository) Create(sub *subscription.SubscriptionUser) error {
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&subscription.SubscriptionUser{}, id).Error
}

// Exists 判断 (author, subscriber) 订阅是否已存在
func (r *SubscriptionRepository) Exists(userID, subscriberID uint) (bool, error) {
	var count int64
	err := r.db.Model(&subscription.SubscriptionUser{}).
		Where("user_id = ? AND subscriber_id = ?", userID, subscriberID).
		Count(&count).Error
	return count > 0, err
}

// ListBySubscriber 某用户关注的作者
func (r *SubscriptionRepository) ListBySubscriber(subscriberID uint) ([]subscription.SubscriptionUser, error) {
	var subs []subscription.SubscriptionUser
	err := r.db.Where("subscriber_id = ?", subscriberID).Order("id ASC").Find(&subs).Error
	return subs, err
}

// ListByUser 关注某作者的用户
func (r *SubscriptionRepository) ListByUser(userID uint) ([]subscription.SubscriptionUser, error) {
	var subs []subscription.SubscriptionUser
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&subs).Error
	return subs, err
}

// UserExists 被关注的目标用户是否存在
func (r *SubscriptionRepository) UserExists(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
