package usecase

import (
	"context"
	"errors"
	"testing"

	"streaming-catalog/internal/data/entity"
)

func TestThreadFor_LatestFirstByDefault(t *testing.T) {
	service, _ := newTestService(t)

	thread, err := service.Comment.ThreadFor(context.Background(), 1, SortLatest)
	if err != nil {
		t.Fatal(err)
	}
	if len(thread) != 3 {
		t.Fatalf("want 3 seeded comments, got %d", len(thread))
	}
	for i := 1; i < len(thread); i++ {
		if thread[i].PostedAt.After(thread[i-1].PostedAt) {
			t.Fatalf("thread not newest-first at position %d", i)
		}
	}
}

func TestThreadFor_PopularOrdersTopLevelOnly(t *testing.T) {
	service, _ := newTestService(t)

	thread, err := service.Comment.ThreadFor(context.Background(), 1, SortPopular)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(thread); i++ {
		if thread[i].Likes > thread[i-1].Likes {
			t.Fatalf("thread not most-liked-first at position %d", i)
		}
	}
}

func TestPost_PrependsTopLevelComment(t *testing.T) {
	service, _ := newTestService(t)
	userID := seededUserID(t, service)

	thread, err := service.Comment.Post(context.Background(), 1, userID, "Obra-prima absoluta.")
	if err != nil {
		t.Fatal(err)
	}

	if len(thread) != 4 {
		t.Fatalf("want 4 comments, got %d", len(thread))
	}
	if thread[0].Text != "Obra-prima absoluta." {
		t.Fatalf("new comment not first: %q", thread[0].Text)
	}
	if thread[0].Author != "Espectador Alpha" {
		t.Fatalf("want seeded author name, got %q", thread[0].Author)
	}
}

func TestReply_NestsUnderExistingReply(t *testing.T) {
	service, _ := newTestService(t)
	userID := seededUserID(t, service)
	ctx := context.Background()

	// Comment 4 is itself a reply under comment 1
	thread, err := service.Comment.Reply(ctx, 1, 4, userID, "Também achei!")
	if err != nil {
		t.Fatal(err)
	}

	var parent *entity.Comment
	for i := range thread {
		if thread[i].ID == 1 {
			parent = &thread[i]
		}
	}
	if parent == nil {
		t.Fatal("top-level comment 1 missing")
	}
	nested := parent.Replies[0].Replies
	if len(nested) != 1 || nested[0].Text != "Também achei!" {
		t.Fatalf("reply not nested under comment 4: %+v", nested)
	}
}

func TestReply_UnknownParent(t *testing.T) {
	service, _ := newTestService(t)
	userID := seededUserID(t, service)

	_, err := service.Comment.Reply(context.Background(), 1, 999, userID, "?")
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("want ErrCommentNotFound, got %v", err)
	}
}

func TestLike_PersistsAcrossReads(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Comment.Like(ctx, 1, 3); err != nil {
		t.Fatal(err)
	}

	thread, err := service.Comment.ThreadFor(ctx, 1, SortLatest)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range thread {
		if c.ID == 3 && c.Likes != 6 {
			t.Fatalf("want 6 likes on comment 3, got %d", c.Likes)
		}
	}
}

func TestLike_UnknownComment(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Comment.Like(context.Background(), 1, 999); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("want ErrCommentNotFound, got %v", err)
	}
}

func TestThreads_AreIndependentPerContent(t *testing.T) {
	service, _ := newTestService(t)
	userID := seededUserID(t, service)
	ctx := context.Background()

	if _, err := service.Comment.Post(ctx, 1, userID, "Só aqui."); err != nil {
		t.Fatal(err)
	}

	other, err := service.Comment.ThreadFor(ctx, 2, SortLatest)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 3 {
		t.Fatalf("thread for content 2 affected: %d comments", len(other))
	}
}
