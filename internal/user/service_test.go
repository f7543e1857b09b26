package user

import (
	"testing"

	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/testutils"
	"github.com/n1energy/wb-tech-blog/response"
)

func setupUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewUserService(NewUserRepository(db)), db
}

func TestGetUser_ArticleCount(t *testing.T) {
	service, db := setupUserService(t)

	prolific := testutils.CreateTestUser(db)
	silent := testutils.CreateTestUser(db)

	testutils.CreateTestArticle(db, prolific.ID)
	testutils.CreateTestArticle(db, prolific.ID)
	testutils.CreateTestArticle(db, prolific.ID)

	profile, berr := service.Get(prolific.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	if profile.NumArticles != 3 {
		t.Errorf("Expected 3 articles, got %d", profile.NumArticles)
	}
	if profile.Username != prolific.Username {
		t.Errorf("Expected username %q, got %q", prolific.Username, profile.Username)
	}

	// 没写过文章的用户统计为 0
	profile, berr = service.Get(silent.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	if profile.NumArticles != 0 {
		t.Errorf("Expected 0 articles, got %d", profile.NumArticles)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	service, _ := setupUserService(t)

	_, berr := service.Get(999999)
	if berr == nil {
		t.Fatal("Expected error for missing user")
	}
	if berr.Code != response.NotFound {
		t.Errorf("Expected NotFound code, got %d", berr.Code)
	}
}

func TestGetUser_SubscriptionLists(t *testing.T) {
	service, db := setupUserService(t)

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)
	carol := testutils.CreateTestUser(db)

	// bob 和 carol 关注 alice；alice 关注 bob
	testutils.CreateTestSubscription(db, alice.ID, bob.ID)
	testutils.CreateTestSubscription(db, alice.ID, carol.ID)
	testutils.CreateTestSubscription(db, bob.ID, alice.ID)

	profile, berr := service.Get(alice.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if len(profile.Followers) != 2 {
		t.Errorf("Expected 2 followers, got %d", len(profile.Followers))
	}
	if len(profile.Following) != 1 {
		t.Fatalf("Expected 1 following entry, got %d", len(profile.Following))
	}
	if profile.Following[0].User != bob.ID {
		t.Errorf("Expected alice to follow %d, got %d", bob.ID, profile.Following[0].User)
	}
}

func TestListUsers_OrderByArticleCount(t *testing.T) {
	service, db := setupUserService(t)

	busy := testutils.CreateTestUser(db)
	medium := testutils.CreateTestUser(db)
	idle := testutils.CreateTestUser(db)

	for i := 0; i < 3; i++ {
		testutils.CreateTestArticle(db, busy.ID)
	}
	testutils.CreateTestArticle(db, medium.ID)

	result, berr := service.List("-num_articles", 1, 100)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	pos := make(map[uint]int)
	counts := make(map[uint]int64)
	for i, u := range result.Users {
		pos[u.ID] = i
		counts[u.ID] = u.NumArticles
	}

	for _, id := range []uint{busy.ID, medium.ID, idle.ID} {
		if _, ok := pos[id]; !ok {
			t.Fatalf("User %d missing from listing", id)
		}
	}

	if counts[busy.ID] != 3 || counts[medium.ID] != 1 || counts[idle.ID] != 0 {
		t.Errorf("Wrong article counts: %v", counts)
	}

	// 降序：文章多的排在前面
	if !(pos[busy.ID] < pos[medium.ID] && pos[medium.ID] < pos[idle.ID]) {
		t.Errorf("Wrong ordering: busy=%d medium=%d idle=%d", pos[busy.ID], pos[medium.ID], pos[idle.ID])
	}

	// 升序反转
	result, berr = service.List("num_articles", 1, 100)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	pos = make(map[uint]int)
	for i, u := range result.Users {
		pos[u.ID] = i
	}
	if !(pos[idle.ID] < pos[medium.ID] && pos[medium.ID] < pos[busy.ID]) {
		t.Errorf("Wrong ascending ordering: busy=%d medium=%d idle=%d", pos[busy.ID], pos[medium.ID], pos[idle.ID])
	}
}
