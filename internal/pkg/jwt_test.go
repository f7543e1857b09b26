package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n1energy/wb-tech-blog/config"
)

func TestGenerateAccessToken(t *testing.T) {
	// 初始化配置
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 24,
		},
	}

	tests := []struct {
		name     string
		userID   uint
		username string
		isStaff  bool
		wantErr  bool
	}{
		{
			name:     "生成有效的访问令牌",
			userID:   1,
			username: "testuser",
			isStaff:  false,
			wantErr:  false,
		},
		{
			name:     "管理员令牌",
			userID:   2,
			username: "admin",
			isStaff:  true,
			wantErr:  false,
		},
		{
			name:     "用户名为空",
			userID:   1,
			username: "",
			isStaff:  false,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAccessToken(tt.userID, tt.username, tt.isStaff)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestParseAccessToken(t *testing.T) {
	// 初始化配置
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 24,
		},
	}

	// 生成一个有效的令牌用于测试
	validToken, err := GenerateAccessToken(42, "testuser", true)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantErr   error
		wantID    uint
		wantStaff bool
	}{
		{
			name:      "解析有效令牌",
			token:     validToken,
			wantErr:   nil,
			wantID:    42,
			wantStaff: true,
		},
		{
			name:    "空令牌",
			token:   "",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "格式错误的令牌",
			token:   "not.a.token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "被篡改的令牌",
			token:   validToken + "x",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseAccessToken(tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.UserID)
			assert.Equal(t, "testuser", claims.Username)
			assert.Equal(t, tt.wantStaff, claims.IsStaff)
		})
	}
}

func TestGenerateRandomToken(t *testing.T) {
	token1, err := GenerateRandomToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token1)

	token2, err := GenerateRandomToken()
	assert.NoError(t, err)

	// 两次生成的令牌不应相同
	assert.NotEqual(t, token1, token2)
}
