package dto

import "github.com/n1energy/wb-tech-blog/internal/model/subscription"

// SubscribeRequest 订阅请求
// subscriber 永远取自认证上下文，user 为被关注的作者ID
type SubscribeRequest struct {
	User uint `json:"user" binding:"required"`
}

// SubscriptionListResponse 当前用户的订阅关系
type SubscriptionListResponse struct {
	// 我关注的作者
	Following []subscription.SubscriptionUser `json:"following"`
	// 关注我的用户
	Followers []subscription.SubscriptionUser `json:"followers"`
}
