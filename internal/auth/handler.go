package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/database"
	"github.com/n1energy/wb-tech-blog/internal/dto"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(db *gorm.DB, redisClient *database.RedisClient) *AuthHandler {
	refreshRepo := NewRefreshTokenRepository(redisClient)

	return &AuthHandler{
		authService: NewAuthService(db, refreshRepo),
	}
}

// Register 用户注册
// @Summary 账号密码注册，成功后返回令牌对
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=TokenResponse}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.authService.Register(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, result)
}

// Login 用户登录
// @Summary 账号密码登录，返回令牌对
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=TokenResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.authService.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 同时写入 cookie，便于浏览器端携带
	c.SetCookie("access_token", result.AccessToken, 3600*24, "/", "", false, true)
	dto.SuccessResponse(c, result)
}

// Refresh 刷新令牌
// @Summary 用 refresh token 换取新的令牌对（旧令牌作废）
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "刷新令牌"
// @Success 200 {object} response.Response{data=TokenResponse}
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.authService.Refresh(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	c.SetCookie("access_token", result.AccessToken, 3600*24, "/", "", false, true)
	dto.SuccessResponse(c, result)
}
