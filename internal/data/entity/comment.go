package entity

import "time"

// Comment is a single node of a discussion thread. Replies is always non-nil,
// possibly empty, so recursive traversal never has to branch on absence.
type Comment struct {
	ID       int64     `json:"id"`
	Author   string    `json:"author"`
	Avatar   string    `json:"avatar"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
	Likes    int       `json:"likes"`
	Replies  []Comment `json:"replies"`
}

// LikeComment returns a new thread in which the comment with the given id has
// its like count incremented. Every node on the result is a fresh value, so
// callers holding the previous thread never observe the change.
func LikeComment(thread []Comment, id int64) []Comment {
	updated := make([]Comment, 0, len(thread))
	for _, c := range thread {
		if c.ID == id {
			c.Likes++
			c.Replies = copyThread(c.Replies)
		} else {
			c.Replies = LikeComment(c.Replies, id)
		}
		updated = append(updated, c)
	}
	return updated
}

// AddReply returns a new thread with reply prepended to the reply list of the
// comment with the given parent id, searching through every reply level.
func AddReply(thread []Comment, parentID int64, reply Comment) []Comment {
	if reply.Replies == nil {
		reply.Replies = []Comment{}
	}
	updated := make([]Comment, 0, len(thread))
	for _, c := range thread {
		if c.ID == parentID {
			replies := make([]Comment, 0, len(c.Replies)+1)
			replies = append(replies, reply)
			replies = append(replies, copyThread(c.Replies)...)
			c.Replies = replies
		} else {
			c.Replies = AddReply(c.Replies, parentID, reply)
		}
		updated = append(updated, c)
	}
	return updated
}

// CountComments counts every node in the thread, replies included.
func CountComments(thread []Comment) int {
	total := 0
	for _, c := range thread {
		total += 1 + CountComments(c.Replies)
	}
	return total
}

func copyThread(thread []Comment) []Comment {
	copied := make([]Comment, 0, len(thread))
	for _, c := range thread {
		c.Replies = copyThread(c.Replies)
		copied = append(copied, c)
	}
	return copied
}
