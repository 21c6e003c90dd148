// File: /services/friend_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"friendlink-api/apperrors"
	"friendlink-api/models"
)

// UserStore is the slice of user persistence the services need.
type UserStore interface {
	FindByID(id string) (*models.User, error)
	FindByIDs(ids []string) ([]models.User, error)
	FindCandidates(excludeIDs []string, limit int) ([]models.User, error)
	SearchByUsername(query, excludeID string, limit int) ([]models.User, error)
}

// FriendStore is the slice of friend-request and friendship persistence
// the services need.
type FriendStore interface {
	AreFriends(user1ID, user2ID string) (bool, error)
	HasPendingBetween(user1ID, user2ID string) (bool, error)
	CreateRequest(request *models.FriendRequest) error
	PendingForRecipient(requestID uint, recipientID string) (*models.FriendRequest, error)
	PendingForSender(requestID uint, senderID string) (*models.FriendRequest, error)
	AcceptRequest(request *models.FriendRequest) error
	RejectRequest(request *models.FriendRequest) error
	DeleteRequest(request *models.FriendRequest) error
	PendingReceived(userID string) ([]models.FriendRequest, error)
	PendingSent(userID string) ([]models.FriendRequest, error)
	FriendIDs(userID string) ([]string, error)
	PendingCounterpartyIDs(userID string) ([]string, error)
	EdgesTouching(userIDs []string) ([]models.Friendship, error)
	DeleteRejectedBefore(cutoff time.Time) (int64, error)
}

var (
	ErrSelfRequest       = apperrors.New(apperrors.ErrInvalidArgument, "cannot send a friend request to yourself")
	ErrRecipientNotFound = apperrors.New(apperrors.ErrNotFound, "recipient user not found")
	ErrAlreadyFriends    = apperrors.New(apperrors.ErrConflict, "users are already friends")
	ErrDuplicateRequest  = apperrors.New(apperrors.ErrConflict, "friend request already exists")
	ErrRequestNotFound   = apperrors.New(apperrors.ErrNotFound, "friend request not found")
	ErrUserNotFound      = apperrors.New(apperrors.ErrNotFound, "user not found")
	ErrEmptySearchQuery  = apperrors.New(apperrors.ErrInvalidArgument, "search query is required")
)

const searchResultLimit = 10

// FriendService owns the friend-request lifecycle and the friend graph.
// Every operation takes the acting user explicitly; the friend graph is
// only ever mutated by Accept.
type FriendService struct {
	users    UserStore
	friends  FriendStore
	notifier *EmailService
}

func NewFriendService(users UserStore, friends FriendStore, notifier *EmailService) *FriendService {
	return &FriendService{
		users:    users,
		friends:  friends,
		notifier: notifier,
	}
}

// Send creates a pending request from the actor to the recipient. It
// does not touch the friend graph.
func (s *FriendService) Send(actorID, recipientID string) (*models.FriendRequest, error) {
	if actorID == recipientID {
		return nil, ErrSelfRequest
	}

	recipient, err := s.users.FindByID(recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("looking up recipient: %w", err)
	}

	areFriends, err := s.friends.AreFriends(actorID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("checking friendship: %w", err)
	}
	if areFriends {
		return nil, ErrAlreadyFriends
	}

	hasPending, err := s.friends.HasPendingBetween(actorID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("checking pending requests: %w", err)
	}
	if hasPending {
		return nil, ErrDuplicateRequest
	}

	request := &models.FriendRequest{
		SenderID:    actorID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := s.friends.CreateRequest(request); err != nil {
		return nil, fmt.Errorf("creating friend request: %w", err)
	}

	if s.notifier.Enabled() {
		sender, err := s.users.FindByID(actorID)
		if err == nil {
			go s.notifier.SendRequestNotification(recipient, sender)
		}
	}

	return request, nil
}

// Accept marks a pending request addressed to the actor as accepted and
// records the friendship edge.
func (s *FriendService) Accept(actorID string, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friends.PendingForRecipient(requestID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("looking up friend request: %w", err)
	}

	if err := s.friends.AcceptRequest(request); err != nil {
		return nil, fmt.Errorf("accepting friend request: %w", err)
	}

	if s.notifier.Enabled() {
		sender, senderErr := s.users.FindByID(request.SenderID)
		recipient, recipientErr := s.users.FindByID(request.RecipientID)
		if senderErr == nil && recipientErr == nil {
			go s.notifier.SendAcceptNotification(sender, recipient)
		}
	}

	return request, nil
}

// Reject marks a pending request addressed to the actor as rejected.
// The friend graph is untouched.
func (s *FriendService) Reject(actorID string, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friends.PendingForRecipient(requestID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("looking up friend request: %w", err)
	}

	if err := s.friends.RejectRequest(request); err != nil {
		return nil, fmt.Errorf("rejecting friend request: %w", err)
	}

	return request, nil
}

// Cancel deletes a pending request created by the actor.
func (s *FriendService) Cancel(actorID string, requestID uint) error {
	request, err := s.friends.PendingForSender(requestID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("looking up friend request: %w", err)
	}

	if err := s.friends.DeleteRequest(request); err != nil {
		return fmt.Errorf("cancelling friend request: %w", err)
	}

	return nil
}

// ListPending returns the actor's pending requests, received and sent,
// with counterparty profiles attached.
func (s *FriendService) ListPending(actorID string) (received, sent []models.FriendRequest, err error) {
	received, err = s.friends.PendingReceived(actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing received requests: %w", err)
	}

	sent, err = s.friends.PendingSent(actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing sent requests: %w", err)
	}

	return received, sent, nil
}

// ListFriends resolves the actor's friend set to user profiles.
func (s *FriendService) ListFriends(actorID string) ([]models.User, error) {
	if _, err := s.users.FindByID(actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	friendIDs, err := s.friends.FriendIDs(actorID)
	if err != nil {
		return nil, fmt.Errorf("listing friend ids: %w", err)
	}

	friends, err := s.users.FindByIDs(friendIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving friends: %w", err)
	}

	return friends, nil
}

// SearchUsers matches usernames containing the query,
// case-insensitively, never returning the actor.
func (s *FriendService) SearchUsers(actorID, query string) ([]models.User, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	users, err := s.users.SearchByUsername(query, actorID, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	return users, nil
}
