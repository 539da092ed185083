package models

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Major        string   `json:"major"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	PasswordHash string   `json:"-"`
}
