package repositories

import (
	"time"

	"gorm.io/gorm"

	"friendlink-api/models"
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

func (r *FriendRepository) AreFriends(user1ID, user2ID string) (bool, error) {
	user1ID, user2ID = models.OrderPair(user1ID, user2ID)

	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).
		Count(&count).Error
	return count > 0, err
}

// HasPendingBetween reports whether a pending request exists between the
// pair in either direction.
func (r *FriendRepository) HasPendingBetween(user1ID, user2ID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND status = ?",
			user1ID, user2ID, user2ID, user1ID, models.FriendRequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *FriendRepository) CreateRequest(request *models.FriendRequest) error {
	return r.db.Create(request).Error
}

// PendingForRecipient finds a pending request addressed to the given
// user. Returns gorm.ErrRecordNotFound when no such row exists.
func (r *FriendRepository) PendingForRecipient(requestID uint, recipientID string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.First(&request, "id = ? AND recipient_id = ? AND status = ?",
		requestID, recipientID, models.FriendRequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// PendingForSender finds a pending request created by the given user.
func (r *FriendRepository) PendingForSender(requestID uint, senderID string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.First(&request, "id = ? AND sender_id = ? AND status = ?",
		requestID, senderID, models.FriendRequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// AcceptRequest flips the request to accepted and inserts the friendship
// edge in one transaction, so a crash cannot leave the two out of sync.
func (r *FriendRepository) AcceptRequest(request *models.FriendRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		request.Status = models.FriendRequestStatusAccepted
		if err := tx.Save(request).Error; err != nil {
			return err
		}

		user1ID, user2ID := models.OrderPair(request.SenderID, request.RecipientID)

		// FirstOrCreate keeps accept idempotent if the edge already exists
		friendship := models.Friendship{User1ID: user1ID, User2ID: user2ID}
		return tx.Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).
			FirstOrCreate(&friendship).Error
	})
}

func (r *FriendRepository) RejectRequest(request *models.FriendRequest) error {
	request.Status = models.FriendRequestStatusRejected
	return r.db.Save(request).Error
}

func (r *FriendRepository) DeleteRequest(request *models.FriendRequest) error {
	return r.db.Delete(request).Error
}

func (r *FriendRepository) PendingReceived(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Preload("Sender").
		Where("recipient_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepository) PendingSent(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Preload("Recipient").
		Where("sender_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FriendIDs returns all friend ids for a user.
func (r *FriendRepository) FriendIDs(userID string) ([]string, error) {
	var friendships []models.Friendship
	err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	friendIDs := make([]string, 0, len(friendships))
	for _, friendship := range friendships {
		if friendship.User1ID == userID {
			friendIDs = append(friendIDs, friendship.User2ID)
		} else {
			friendIDs = append(friendIDs, friendship.User1ID)
		}
	}

	return friendIDs, nil
}

// PendingCounterpartyIDs returns the other party of every pending
// request involving the user, in either direction.
func (r *FriendRepository) PendingCounterpartyIDs(userID string) ([]string, error) {
	var requests []models.FriendRequest
	err := r.db.
		Where("(sender_id = ? OR recipient_id = ?) AND status = ?",
			userID, userID, models.FriendRequestStatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	counterpartyIDs := make([]string, 0, len(requests))
	for _, request := range requests {
		if request.SenderID == userID {
			counterpartyIDs = append(counterpartyIDs, request.RecipientID)
		} else {
			counterpartyIDs = append(counterpartyIDs, request.SenderID)
		}
	}

	return counterpartyIDs, nil
}

// EdgesTouching returns every friendship row with at least one endpoint
// in the given set. Feeding it a user's friend ids yields the edges the
// mutual-friend counting walks.
func (r *FriendRepository) EdgesTouching(userIDs []string) ([]models.Friendship, error) {
	if len(userIDs) == 0 {
		return []models.Friendship{}, nil
	}

	var friendships []models.Friendship
	err := r.db.
		Where("user1_id IN ? OR user2_id IN ?", userIDs, userIDs).
		Find(&friendships).Error
	return friendships, err
}

// DeleteRejectedBefore removes rejected requests older than the cutoff.
func (r *FriendRepository) DeleteRejectedBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("status = ? AND updated_at < ?", models.FriendRequestStatusRejected, cutoff).
		Delete(&models.FriendRequest{})
	return result.RowsAffected, result.Error
}
