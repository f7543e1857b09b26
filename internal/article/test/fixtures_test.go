package article_test

import (
	"testing"

	"gorm.io/gorm"

	articlePkg "github.com/n1energy/wb-tech-blog/internal/article"
	"github.com/n1energy/wb-tech-blog/internal/testutils"
)

// setupArticleService 创建 ArticleService 实例用于测试
func setupArticleService(t *testing.T) (*articlePkg.ArticleService, *gorm.DB) {
	db := testutils.SetupTestDB(t)

	articleRepo := articlePkg.NewArticleRepository(db)
	service := articlePkg.NewArticleService(articleRepo)
	return service, db
}

func strPtr(s string) *string {
	return &s
}
