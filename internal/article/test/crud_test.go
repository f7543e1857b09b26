package article_test

import (
	"testing"

	"github.com/n1energy/wb-tech-blog/internal/dto"
	"github.com/n1energy/wb-tech-blog/internal/model/article"
	"github.com/n1energy/wb-tech-blog/internal/testutils"
	"github.com/n1energy/wb-tech-blog/response"
)

func TestCreateArticle_Integration(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)

	req := dto.CreateArticleRequest{
		Title: "Go 并发模式",
		Body:  "channel 与 goroutine 的几种组合",
	}

	created, berr := service.Create(req, author.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	// 作者必须是当前用户
	if created.UserID == nil || *created.UserID != author.ID {
		t.Errorf("Expected owner %d, got %v", author.ID, created.UserID)
	}

	// 验证落库
	var art article.Article
	if err := db.First(&art, created.ID).Error; err != nil {
		t.Fatalf("Article not found: %v", err)
	}
	if art.Title != req.Title {
		t.Errorf("Expected title %q, got %q", req.Title, art.Title)
	}
	if art.Body != req.Body {
		t.Errorf("Expected body %q, got %q", req.Body, art.Body)
	}
	if art.UpdatedAt.Before(art.CreatedAt) {
		t.Errorf("updated_at %v is before created_at %v", art.UpdatedAt, art.CreatedAt)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	service, _ := setupArticleService(t)

	_, berr := service.Get(999999)
	if berr == nil {
		t.Fatal("Expected error for missing article")
	}
	if berr.Code != response.NotFound {
		t.Errorf("Expected NotFound code, got %d", berr.Code)
	}
}

func TestUpdateArticle_Permissions(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	outsider := testutils.CreateTestUser(db)
	staff := testutils.CreateTestUser(db, testutils.WithStaff())
	art := testutils.CreateTestArticle(db, author.ID)

	tests := []struct {
		name     string
		userID   uint
		isStaff  bool
		wantErr  bool
		wantCode response.ResponseCode
	}{
		{"作者本人可以修改", author.ID, false, false, 0},
		{"其他用户禁止修改", outsider.ID, false, true, response.Forbidden},
		{"管理员可以修改任意文章", staff.ID, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateArticleRequest{Title: strPtr("更新后的标题")}
			updated, berr := service.Update(art.ID, req, tt.userID, tt.isStaff)

			if tt.wantErr {
				if berr == nil {
					t.Fatal("Expected error but got none")
				}
				if berr.Code != tt.wantCode {
					t.Errorf("Expected code %d, got %d", tt.wantCode, berr.Code)
				}
				return
			}

			if berr != nil {
				t.Fatalf("Unexpected error: %v", berr.Msg)
			}
			if updated.Title != "更新后的标题" {
				t.Errorf("Title not updated, got %q", updated.Title)
			}
			// 作者不随更新改变
			if updated.UserID == nil || *updated.UserID != author.ID {
				t.Errorf("Owner changed unexpectedly: %v", updated.UserID)
			}
		})
	}
}

func TestUpdateArticle_PartialBody(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("原标题"))

	// 只更新 body，title 保持不变
	req := dto.UpdateArticleRequest{Body: strPtr("新的正文")}
	updated, berr := service.Update(art.ID, req, author.ID, false)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if updated.Title != "原标题" {
		t.Errorf("Title should be unchanged, got %q", updated.Title)
	}
	if updated.Body != "新的正文" {
		t.Errorf("Body not updated, got %q", updated.Body)
	}
}

func TestDeleteArticle_Permissions(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	outsider := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	// 非作者不能删除
	berr := service.Delete(art.ID, outsider.ID, false)
	if berr == nil || berr.Code != response.Forbidden {
		t.Fatalf("Expected Forbidden for outsider, got %v", berr)
	}

	// 作者可以删除
	if berr := service.Delete(art.ID, author.ID, false); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	// 再次获取返回 NotFound
	if _, berr := service.Get(art.ID); berr == nil || berr.Code != response.NotFound {
		t.Errorf("Expected NotFound after delete, got %v", berr)
	}
}

func TestDeleteArticle_CascadesReadState(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	reader := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	// 先产生一条阅读状态行
	if _, berr := service.SetReadState(reader.ID, art.ID, true); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if berr := service.Delete(art.ID, author.ID, false); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	// 阅读状态行随文章级联删除
	var count int64
	if err := db.Model(&article.ReadArticle{}).Where("article_id = ?", art.ID).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 read state rows after cascade, got %d", count)
	}
}

func TestListArticles_Ordering(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	first := testutils.CreateTestArticle(db, author.ID)
	second := testutils.CreateTestArticle(db, author.ID)

	result, berr := service.List("-created", 1, 20)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if result.Total < 2 {
		t.Fatalf("Expected at least 2 articles, got %d", result.Total)
	}

	// 降序：后创建的在前；时间戳相同按 id 降序兜底
	idxFirst, idxSecond := -1, -1
	for i, a := range result.Articles {
		if a.ID == first.ID {
			idxFirst = i
		}
		if a.ID == second.ID {
			idxSecond = i
		}
	}
	if idxFirst == -1 || idxSecond == -1 {
		t.Fatal("Created articles not in listing")
	}
	if idxSecond > idxFirst {
		t.Errorf("Expected newer article before older one: newer at %d, older at %d", idxSecond, idxFirst)
	}
}
