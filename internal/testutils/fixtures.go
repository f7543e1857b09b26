package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/model/article"
	"github.com/n1energy/wb-tech-blog/internal/model/subscription"
	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

// TestPassword is the plaintext password of every fixture user
const TestPassword = "Password123"

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	username := fmt.Sprintf("test_user_%s", uniqueID)
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	// MinCost keeps fixture creation fast
	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}

	testUser := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithStaff marks the user as staff
func WithStaff() UserOption {
	return func(u *user.User) {
		u.IsStaff = true
	}
}

// CreateTestArticle creates a test article owned by the given user
func CreateTestArticle(db *gorm.DB, ownerID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()
	title := fmt.Sprintf("Test Article %s", uniqueID)

	testArticle := &article.Article{
		UserID:    &ownerID,
		Title:     title,
		Body:      "Test article body",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithBody sets the article body
func WithBody(body string) ArticleOption {
	return func(a *article.Article) {
		a.Body = body
	}
}

// CreateTestSubscription makes subscriberID follow userID
func CreateTestSubscription(db *gorm.DB, userID, subscriberID uint) *subscription.SubscriptionUser {
	sub := &subscription.SubscriptionUser{
		UserID:       userID,
		SubscriberID: subscriberID,
		CreatedAt:    time.Now(),
	}

	if err := db.Create(sub).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test subscription: %v", err))
	}

	return sub
}
