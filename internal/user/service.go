package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/response"
)

type UserService struct {
	userRepo *UserRepository
}

func NewUserService(userRepo *UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// buildOrder 把 ordering 查询参数映射为排序表达式
func buildOrder(ordering string) string {
	switch ordering {
	case "num_articles":
		return "num_articles ASC, users.id ASC"
	case "-num_articles":
		return "num_articles DESC, users.id ASC"
	default:
		return "num_articles DESC, users.id ASC"
	}
}

// toProfile 拼装档案响应：文章数 + 订阅关系列表
func (s *UserService) toProfile(row *ProfileRow) (*dto.UserProfileResponse, error) {
	followers, err := s.userRepo.GetFollowers(row.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.userRepo.GetFollowing(row.ID)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfileResponse{
		ID:          row.ID,
		Username:    row.Username,
		Email:       row.Email,
		NumArticles: row.NumArticles,
		Followers:   make([]dto.FollowerItem, 0, len(followers)),
		Following:   make([]dto.FollowingItem, 0, len(following)),
	}
	for _, sub := range followers {
		profile.Followers = append(profile.Followers, dto.FollowerItem{
			ID:         sub.ID,
			Subscriber: sub.SubscriberID,
		})
	}
	for _, sub := range following {
		profile.Following = append(profile.Following, dto.FollowingItem{
			ID:   sub.ID,
			User: sub.UserID,
		})
	}

	return profile, nil
}

// List 用户列表，默认按文章数降序
func (s *UserService) List(ordering string, page, pageSize int) (*dto.UserListResponse, *response.BusinessError) {
	offset := (page - 1) * pageSize
	rows, total, err := s.userRepo.ListWithArticleCount(buildOrder(ordering), offset, pageSize)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户列表失败"),
			response.WithError(err),
		)
	}

	users := make([]dto.UserProfileResponse, 0, len(rows))
	for i := range rows {
		profile, err := s.toProfile(&rows[i])
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("获取用户档案失败"),
				response.WithError(err),
			)
		}
		users = append(users, *profile)
	}

	return &dto.UserListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Users:    users,
	}, nil
}

// Get 单个用户档案
func (s *UserService) Get(id uint) (*dto.UserProfileResponse, *response.BusinessError) {
	row, err := s.userRepo.GetWithArticleCount(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户失败"),
			response.WithError(err),
		)
	}

	profile, perr := s.toProfile(row)
	if perr != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户档案失败"),
			response.WithError(perr),
		)
	}

	return profile, nil
}
