package dto

// FollowerItem 关注了该用户的一条订阅记录
type FollowerItem struct {
	ID         uint `json:"id"`
	Subscriber uint `json:"subscriber"`
}

// FollowingItem 该用户关注他人的一条订阅记录
type FollowingItem struct {
	ID   uint `json:"id"`
	User uint `json:"user"`
}

// UserProfileResponse 用户档案响应，带文章数统计
type UserProfileResponse struct {
	ID          uint            `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	NumArticles int64           `json:"num_articles"`
	Followers   []FollowerItem  `json:"followers"`
	Following   []FollowingItem `json:"following"`
}

// UserListResponse 用户列表响应（分页）
type UserListResponse struct {
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Users    []UserProfileResponse `json:"users"`
}
