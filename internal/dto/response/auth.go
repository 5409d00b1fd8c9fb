package response

import (
	"time"

	"streaming-catalog/internal/data/entity"
)

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	MyList    []int     `json:"my_list"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	MyList []int  `json:"my_list"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		MyList: append([]int(nil), user.MyList...),
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		MyList: append([]int(nil), user.MyList...),
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
