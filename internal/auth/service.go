package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/model/user"
	"github.com/n1energy/wb-tech-blog/internal/pkg"
	"github.com/n1energy/wb-tech-blog/response"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	lowerRegex    = regexp.MustCompile(`[a-z]`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

type AuthService struct {
	db          *gorm.DB
	refreshRepo *RefreshTokenRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(db *gorm.DB, refreshRepo *RefreshTokenRepository) *AuthService {
	return &AuthService{
		db:          db,
		refreshRepo: refreshRepo,
	}
}

// Register 账号密码注册，成功后直接签发令牌
func (s *AuthService) Register(req RegisterRequest) (TokenResponse, *response.BusinessError) {
	// 1. 参数校验
	if err := s.validateRequest(req); err != nil {
		return TokenResponse{}, err
	}

	// 2. 检查用户名和邮箱是否已存在
	var existingUser user.User
	if err := s.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existingUser).Error; err == nil {
		if existingUser.Username == req.Username {
			return TokenResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("用户名已存在"),
			)
		}
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	// 4. 创建用户；并发重复注册由唯一索引兜底
	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return TokenResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("用户名或邮箱已存在"),
			)
		}
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
			response.WithError(err),
		)
	}

	// 5. 签发令牌对
	return s.issueTokens(&newUser)
}

// Login 账号密码登录
func (s *AuthService) Login(req LoginRequest) (TokenResponse, *response.BusinessError) {
	var u user.User
	if err := s.db.Where("username = ?", req.Username).First(&u).Error; err != nil {
		// 不区分用户不存在与密码错误
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("用户名或密码错误"),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("用户名或密码错误"),
		)
	}

	return s.issueTokens(&u)
}

// Refresh 刷新令牌：校验旧 refresh token，撤销并轮换
func (s *AuthService) Refresh(req RefreshRequest) (TokenResponse, *response.BusinessError) {
	tokenData, err := s.refreshRepo.Get(req.RefreshToken)
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("刷新令牌无效或已过期"),
		)
	}

	if err := s.refreshRepo.Delete(req.RefreshToken); err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("撤销旧令牌失败"),
		)
	}

	accessToken, err := pkg.GenerateAccessToken(tokenData.UserID, tokenData.Username, tokenData.IsStaff)
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	newRefreshToken, err := pkg.GenerateRandomToken()
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成刷新令牌失败"),
		)
	}

	if err := s.refreshRepo.Create(newRefreshToken, *tokenData); err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储刷新令牌失败"),
		)
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// issueTokens 为用户签发 access/refresh 令牌对
func (s *AuthService) issueTokens(u *user.User) (TokenResponse, *response.BusinessError) {
	accessToken, err := pkg.GenerateAccessToken(u.ID, u.Username, u.IsStaff)
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	refreshToken, err := pkg.GenerateRandomToken()
	if err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成刷新令牌失败"),
		)
	}

	if err := s.refreshRepo.Create(refreshToken, TokenData{
		UserID:   u.ID,
		Username: u.Username,
		IsStaff:  u.IsStaff,
	}); err != nil {
		return TokenResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储刷新令牌失败"),
		)
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// 参数校验
func (s *AuthService) validateRequest(req RegisterRequest) *response.BusinessError {
	// 校验用户名
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名长度必须在3-50个字符之间"),
		)
	}
	if !usernameRegex.MatchString(req.Username) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名只能包含字母、数字和下划线"),
		)
	}

	// 校验邮箱
	if !emailRegex.MatchString(req.Email) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("邮箱格式不正确"),
		)
	}

	// 校验密码
	if len(req.Password) < 6 || len(req.Password) > 100 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度必须在6-100个字符之间"),
		)
	}
	if !s.isStrongPassword(req.Password) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码强度不足，需包含大小写字母、数字"),
		)
	}

	return nil
}

// 密码强度校验
func (s *AuthService) isStrongPassword(password string) bool {
	hasUpper := upperRegex.MatchString(password)
	hasLower := lowerRegex.MatchString(password)
	hasDigit := digitRegex.MatchString(password)

	return hasUpper && hasLower && hasDigit
}
