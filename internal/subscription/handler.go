package subscription

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/response"
)

type SubscriptionHandler struct {
	subscriptionService *SubscriptionService
}

func NewSubscriptionHandler(db *gorm.DB) *SubscriptionHandler {
	subscriptionRepo := NewSubscriptionRepository(db)

	return &SubscriptionHandler{
		subscriptionService: NewSubscriptionService(subscriptionRepo),
	}
}

// ListSubscriptions 获取当前用户的订阅关系
// @Summary 获取我关注的作者和关注我的用户
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Response{data=dto.SubscriptionListResponse}
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	result, err := h.subscriptionService.List(userID.(uint))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Subscribe 关注作者
// @Summary 关注作者（subscriber 取自当前用户）
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "订阅请求"
// @Success 201 {object} response.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	sub, err := h.subscriptionService.Subscribe(userID.(uint), req.User)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, sub)
}

// Unsubscribe 取消关注
// @Summary 取消关注（仅订阅发起者本人或管理员）
// @Tags Subscription
// @Produce json
// @Param id path int true "订阅ID"
// @Success 204
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的订阅ID"),
		))
		return
	}

	userID, _ := c.Get("user_id")
	isStaff, _ := c.Get("is_staff")

	if berr := h.subscriptionService.Unsubscribe(uint(id), userID.(uint), isStaff.(bool)); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}

	c.Status(http.StatusNoContent)
}
