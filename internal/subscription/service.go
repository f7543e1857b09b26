package subscription

import (
	"errors"

	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/internal/model/subscription"
	"github.com/n1energy/wb-tech-blog/response"
)

type SubscriptionService struct {
	subscriptionRepo *SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo *SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

// Subscribe 关注作者，subscriber 永远为当前用户
// 校验顺序：目标存在 -> 非自己 -> 未重复
func (s *SubscriptionService) Subscribe(subscriberID, targetUserID uint) (*subscription.SubscriptionUser, *response.BusinessError) {
	// 1. 目标用户必须存在
	exists, err := s.subscriptionRepo.UserExists(targetUserID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}
	if !exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	// 2. 不允许关注自己
	if targetUserID == subscriberID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("不能关注自己"),
		)
	}

	// 3. 不允许重复关注
	dup, err := s.subscriptionRepo.Exists(targetUserID, subscriberID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询订阅失败"),
			response.WithError(err),
		)
	}
	if dup {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("已经关注过该作者"),
		)
	}

	sub := &subscription.SubscriptionUser{
		UserID:       targetUserID,
		SubscriberID: subscriberID,
	}

	if err := s.subscriptionRepo.Create(sub); err != nil {
		// 并发下预检查可能双双通过，唯一索引是最终仲裁，
		// 落败方同样收到"已关注"而不是裸的存储错误
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("已经关注过该作者"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建订阅失败"),
			response.WithError(err),
		)
	}

	return sub, nil
}

// Unsubscribe 取消关注，仅订阅的发起者本人或 staff 可删除
func (s *SubscriptionService) Unsubscribe(id uint, userID uint, isStaff bool) *response.BusinessError {
	sub, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("订阅不存在"),
			)
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询订阅失败"),
			response.WithError(err),
		)
	}

	if !isStaff && sub.SubscriberID != userID {
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只能取消自己的订阅"),
		)
	}

	if err := s.subscriptionRepo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除订阅失败"),
			response.WithError(err),
		)
	}

	return nil
}

// List 当前用户的订阅关系：我关注的作者 + 关注我的用户
func (s *SubscriptionService) List(userID uint) (*dto.SubscriptionListResponse, *response.BusinessError) {
	following, err := s.subscriptionRepo.ListBySubscriber(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取订阅列表失败"),
			response.WithError(err),
		)
	}

	followers, err := s.subscriptionRepo.ListByUser(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取粉丝列表失败"),
			response.WithError(err),
		)
	}

	return &dto.SubscriptionListResponse{
		Following: following,
		Followers: followers,
	}, nil
}
