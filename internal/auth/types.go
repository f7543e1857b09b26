package auth

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"newuser"`             // 用户名
	Email    string `json:"email" binding:"required,email" example:"user@example.com"` // 邮箱
	Password string `json:"password" binding:"required" example:"Password123"`         // 密码
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"newuser"`     // 用户名
	Password string `json:"password" binding:"required" example:"Password123"` // 密码
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"refresh_token_xxx"` // 刷新令牌
}

// TokenResponse 令牌响应（注册、登录、刷新共用）
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // 访问令牌
	RefreshToken string `json:"refresh_token" example:"refresh_token_xxx"`                      // 刷新令牌
}
