package user

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/response"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	userRepo := NewUserRepository(db)

	return &UserHandler{
		userService: NewUserService(userRepo),
	}
}

// ListUsers 获取用户列表
// @Summary 用户列表，带文章数统计（默认按文章数降序）
// @Tags User
// @Produce json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Param ordering query string false "排序" Enums(num_articles, -num_articles)
// @Success 200 {object} response.Response{data=dto.UserListResponse}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	ordering := c.DefaultQuery("ordering", "-num_articles")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, err := h.userService.List(ordering, page, pageSize)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// GetUser 获取用户档案
// @Summary 用户档案；:id 为 "current" 时返回当前登录用户
// @Tags User
// @Produce json
// @Param id path string true "用户ID 或 current"
// @Success 200 {object} response.Response{data=dto.UserProfileResponse}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	idParam := c.Param("id")

	var id uint
	if idParam == "current" {
		// current 需要登录态（由可选认证中间件注入）
		userID, exists := c.Get("user_id")
		if !exists {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("未登录"),
			))
			return
		}
		id = userID.(uint)
	} else {
		parsed, err := strconv.Atoi(idParam)
		if err != nil || parsed <= 0 {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.ParseError),
				response.WithErrorMessage("无效的用户ID"),
			))
			return
		}
		id = uint(parsed)
	}

	profile, err := h.userService.Get(id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, profile)
}
