package subscription

import (
	"testing"

	"gorm.io/gorm"

	"github.com/n1energy/wb-tech-blog/internal/testutils"
	"github.com/n1energy/wb-tech-blog/response"
)

func setupSubscriptionService(t *testing.T) (*SubscriptionService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewSubscriptionService(NewSubscriptionRepository(db)), db
}

func TestSubscribe(t *testing.T) {
	service, db := setupSubscriptionService(t)

	alice := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	tests := []struct {
		name         string
		subscriberID uint
		targetID     uint
		wantErr      bool
		wantCode     response.ResponseCode
	}{
		{"正常关注", alice.ID, author.ID, false, 0},
		{"重复关注", alice.ID, author.ID, true, response.InvalidParameter},
		{"关注自己", alice.ID, alice.ID, true, response.InvalidParameter},
		{"目标用户不存在", alice.ID, 999999, true, response.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, berr := service.Subscribe(tt.subscriberID, tt.targetID)

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
			if sub.UserID != tt.targetID || sub.SubscriberID != tt.subscriberID {
				t.Errorf("Subscription keyed to (%d, %d), want (%d, %d)",
					sub.UserID, sub.SubscriberID, tt.targetID, tt.subscriberID)
			}
		})
	}
}

// 校验顺序：目标不存在时即使 id 等于自己也先报 NotFound
func TestSubscribe_ValidationOrder(t *testing.T) {
	service, _ := setupSubscriptionService(t)

	_, berr := service.Subscribe(999999, 999999)
	if berr == nil {
		t.Fatal("Expected error")
	}
	if berr.Code != response.NotFound {
		t.Errorf("Expected NotFound before self-subscribe check, got %d", berr.Code)
	}
}

func TestUnsubscribe(t *testing.T) {
	service, db := setupSubscriptionService(t)

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)
	staff := testutils.CreateTestUser(db, testutils.WithStaff())
	author := testutils.CreateTestUser(db)

	// 订阅不存在
	if berr := service.Unsubscribe(999999, alice.ID, false); berr == nil || berr.Code != response.NotFound {
		t.Fatalf("Expected NotFound for missing subscription, got %v", berr)
	}

	sub := testutils.CreateTestSubscription(db, author.ID, alice.ID)

	// 其他用户不能删除
	if berr := service.Unsubscribe(sub.ID, bob.ID, false); berr == nil || berr.Code != response.Forbidden {
		t.Fatalf("Expected Forbidden for other user, got %v", berr)
	}

	// 订阅发起者本人可以删除
	if berr := service.Unsubscribe(sub.ID, alice.ID, false); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	// staff 可以删除任意订阅
	sub2 := testutils.CreateTestSubscription(db, author.ID, bob.ID)
	if berr := service.Unsubscribe(sub2.ID, staff.ID, true); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
}

// 取消关注后可以重新关注
func TestResubscribe(t *testing.T) {
	service, db := setupSubscriptionService(t)

	alice := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	sub, berr := service.Subscribe(alice.ID, author.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	if berr := service.Unsubscribe(sub.ID, alice.ID, false); berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}
	if _, berr := service.Subscribe(alice.ID, author.ID); berr != nil {
		t.Fatalf("Resubscribe failed: %v", berr.Msg)
	}
}

func TestListSubscriptions(t *testing.T) {
	service, db := setupSubscriptionService(t)

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)
	carol := testutils.CreateTestUser(db)

	// alice 关注 bob；carol 关注 alice
	testutils.CreateTestSubscription(db, bob.ID, alice.ID)
	testutils.CreateTestSubscription(db, alice.ID, carol.ID)

	result, berr := service.List(alice.ID)
	if berr != nil {
		t.Fatalf("Unexpected error: %v", berr.Msg)
	}

	if len(result.Following) != 1 || result.Following[0].UserID != bob.ID {
		t.Errorf("Expected alice to follow bob, got %v", result.Following)
	}
	if len(result.Followers) != 1 || result.Followers[0].SubscriberID != carol.ID {
		t.Errorf("Expected carol to follow alice, got %v", result.Followers)
	}
}
