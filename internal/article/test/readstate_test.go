package article_test

import (
	"testing"

	"github.com/n1energy/wb-tech-blog/internal/model/article"
	"github.com/n1energy/wb-tech-blog/internal/testutils"
	"github.com/n1energy/wb-tech-blog/response"
)

func TestSetReadState_CreatesRowOnFirstAccess(t *testing.T) {
	service, db := setupArticleService(t)

	reader := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	row, berr := service.SetReadState(reader.ID, art.ID, true)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if row.UserID != reader.ID || row.ArticleID != art.ID {
		t.Errorf("Row keyed to (%d, %d), want (%d, %d)", row.UserID, row.ArticleID, reader.ID, art.ID)
	}
	if !row.IsRead {
		t.Error("Expected is_read = true")
	}
}

func TestSetReadState_SingleRowPerUserArticle(t *testing.T) {
	service, db := setupArticleService(t)

	reader := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	// 反复翻转阅读状态
	states := []bool{true, false, true, true, false}
	for _, s := range states {
		if _, berr := service.SetReadState(reader.ID, art.ID, s); berr != nil {
			t.Fatalf("Unexpected error: %v", berr.Msg)
		}
	}

	// (user, article) 始终只有一行
	var count int64
	if err := db.Model(&article.ReadArticle{}).
		Where("user_id = ? AND article_id = ?", reader.ID, art.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected exactly 1 read state row, got %d", count)
	}

	// 最终状态是最后一次写入
	var row article.ReadArticle
	if err := db.Where("user_id = ? AND article_id = ?", reader.ID, art.ID).First(&row).Error; err != nil {
		t.Fatalf("Row not found: %v", err)
	}
	if row.IsRead {
		t.Error("Expected final is_read = false")
	}
}

func TestSetReadState_MissingArticle(t *testing.T) {
	service, db := setupArticleService(t)

	reader := testutils.CreateTestUser(db)

	_, berr := service.SetReadState(reader.ID, 999999, true)
	if berr == nil {
		t.Fatal("Expected error for missing article")
	}
	if berr.Code != response.NotFound {
		t.Errorf("Expected NotFound code, got %d", berr.Code)
	}

	// 不应产生任何孤儿行
	var count int64
	if err := db.Model(&article.ReadArticle{}).Where("article_id = ?", 999999).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no read state rows for missing article, got %d", count)
	}
}

func TestSetReadState_IndependentPerUser(t *testing.T) {
	service, db := setupArticleService(t)

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	if _, berr := service.SetReadState(alice.ID, art.ID, true); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	if _, berr := service.SetReadState(bob.ID, art.ID, false); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	var rows []article.ReadArticle
	if err := db.Where("article_id = ?", art.ID).Order("user_id").Find(&rows).Error; err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		switch row.UserID {
		case alice.ID:
			if !row.IsRead {
				t.Error("Expected alice's row is_read = true")
			}
		case bob.ID:
			if row.IsRead {
				t.Error("Expected bob's row is_read = false")
			}
		}
	}
}
