package entity

// User is the only entity with real mutation: MyList membership changes for the
// lifetime of the process. MyList holds each content id at most once.
type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	MyList       []int  `db:"my_list"`
}

// OnList reports whether the given content id is saved on the user's list.
func (u *User) OnList(contentID int) bool {
	for _, id := range u.MyList {
		if id == contentID {
			return true
		}
	}
	return false
}

// Copy returns a shallow copy with its own MyList backing array, used as a
// change signal to callers holding the previous value.
func (u *User) Copy() *User {
	copied := *u
	copied.MyList = append([]int(nil), u.MyList...)
	return &copied
}
