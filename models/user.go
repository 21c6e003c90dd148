// File: /models/user.go
package models

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Firstname string    `json:"firstname" gorm:"not null;size:100"`
	Lastname  string    `json:"lastname" gorm:"size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recommendation is a user annotated with the number of friends
// shared with the requesting user.
type Recommendation struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Firstname          string `json:"firstname"`
	Lastname           string `json:"lastname"`
	Email              string `json:"email"`
	MutualFriendsCount int    `json:"mutualFriendsCount"`
}
