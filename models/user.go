package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Password  string     `json:"-" bson:"password"`
	Role      string     `json:"role" bson:"role"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}
