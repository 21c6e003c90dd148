package models

import "time"

type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

type FriendRequest struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	SenderID    string              `json:"sender_id" gorm:"not null;size:191;index:idx_friend_requests_pair"`
	RecipientID string              `json:"recipient_id" gorm:"not null;size:191;index:idx_friend_requests_pair"`
	Status      FriendRequestStatus `json:"status" gorm:"not null;default:'pending';size:20"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	Sender    User `json:"sender" gorm:"foreignKey:SenderID"`
	Recipient User `json:"recipient" gorm:"foreignKey:RecipientID"`
}

// Friendship stores one row per edge of the friend graph. User1ID is
// always the smaller id, so an unordered pair maps to exactly one row.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	User1ID   string    `json:"user1_id" gorm:"not null;size:191"`
	User2ID   string    `json:"user2_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`

	User1 User `json:"user1" gorm:"foreignKey:User1ID"`
	User2 User `json:"user2" gorm:"foreignKey:User2ID"`
}

// OrderPair normalizes two user ids into the (User1ID, User2ID) order
// used by the friendships table.
func OrderPair(user1ID, user2ID string) (string, string) {
	if user1ID > user2ID {
		return user2ID, user1ID
	}
	return user1ID, user2ID
}
