// Package subscription 订阅关系模型
package subscription

import (
	"time"

	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

// SubscriptionUser 订阅关系表
// user 为被关注的作者，subscriber 为关注者；(user_id, subscriber_id) 全局唯一，
// 自己关注自己在服务层拒绝，任一方删除时级联删除
type SubscriptionUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_subscriber" json:"user"`
	SubscriberID uint       `gorm:"not null;uniqueIndex:idx_user_subscriber" json:"subscriber"`
	CreatedAt    time.Time  `json:"created_at"`
	User         *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Subscriber   *user.User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
}
