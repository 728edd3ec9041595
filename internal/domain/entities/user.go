package entities

const DefaultUserRole = "staff"

// User is a shop operator allowed to log in.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
