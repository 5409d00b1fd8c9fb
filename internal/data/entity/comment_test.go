package entity

import (
	"testing"
	"time"
)

func nestedThread() []Comment {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Comment{
		{
			ID: 1, Author: "a", Text: "root", PostedAt: base, Likes: 10,
			Replies: []Comment{
				{
					ID: 2, Author: "b", Text: "reply", PostedAt: base.Add(time.Hour), Likes: 4,
					Replies: []Comment{
						{ID: 3, Author: "c", Text: "deep", PostedAt: base.Add(2 * time.Hour), Likes: 1, Replies: []Comment{}},
					},
				},
				{ID: 4, Author: "d", Text: "sibling", PostedAt: base.Add(time.Hour), Likes: 7, Replies: []Comment{}},
			},
		},
		{ID: 5, Author: "e", Text: "second root", PostedAt: base.Add(3 * time.Hour), Likes: 2, Replies: []Comment{}},
	}
}

func TestCountComments_CountsEveryLevel(t *testing.T) {
	thread := []Comment{
		{
			ID: 1, Replies: []Comment{
				{ID: 2, Replies: []Comment{
					{ID: 3, Replies: []Comment{}},
				}},
			},
		},
	}

	if got := CountComments(thread); got != 3 {
		t.Fatalf("want 3 comments, got %d", got)
	}
}

func TestLikeComment_ThirdLevelLeavesRestUnchanged(t *testing.T) {
	thread := nestedThread()
	updated := LikeComment(thread, 3)

	deep := updated[0].Replies[0].Replies[0]
	if deep.Likes != 2 {
		t.Fatalf("want deep node likes 2, got %d", deep.Likes)
	}
	if updated[0].Likes != 10 {
		t.Fatalf("ancestor likes changed: got %d", updated[0].Likes)
	}
	if updated[0].Replies[0].Likes != 4 {
		t.Fatalf("parent likes changed: got %d", updated[0].Replies[0].Likes)
	}
	if updated[0].Replies[1].Likes != 7 {
		t.Fatalf("sibling likes changed: got %d", updated[0].Replies[1].Likes)
	}

	// The input tree must be untouched
	if thread[0].Replies[0].Replies[0].Likes != 1 {
		t.Fatalf("original tree mutated: got %d likes", thread[0].Replies[0].Replies[0].Likes)
	}
}

func TestLikeComment_UnknownIDChangesNothing(t *testing.T) {
	thread := nestedThread()
	updated := LikeComment(thread, 999)

	if CountComments(updated) != CountComments(thread) {
		t.Fatalf("node count changed")
	}
	if updated[0].Likes != 10 || updated[1].Likes != 2 {
		t.Fatalf("likes changed for unknown id")
	}
}

func TestAddReply_PrependsUnderNestedParent(t *testing.T) {
	thread := nestedThread()
	reply := Comment{ID: 99, Author: "f", Text: "new"}

	updated := AddReply(thread, 2, reply)

	replies := updated[0].Replies[0].Replies
	if len(replies) != 2 {
		t.Fatalf("want 2 replies under parent, got %d", len(replies))
	}
	if replies[0].ID != 99 {
		t.Fatalf("want new reply first, got id %d", replies[0].ID)
	}
	if replies[0].Replies == nil {
		t.Fatalf("reply list not initialized")
	}

	// Original parent keeps a single reply
	if len(thread[0].Replies[0].Replies) != 1 {
		t.Fatalf("original tree mutated: %d replies", len(thread[0].Replies[0].Replies))
	}
}
