package response

import "bengkel_pos/internal/domain/entities"

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role}
}
