package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"friendlink-api/models"
)

// memStore is an in-memory implementation of UserStore and FriendStore.
type memStore struct {
	users       map[string]*models.User
	friendships []models.Friendship
	requests    map[uint]*models.FriendRequest
	nextID      uint
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		requests: make(map[uint]*models.FriendRequest),
	}
}

func (m *memStore) addUser(id, username string) *models.User {
	user := &models.User{
		ID:        id,
		Username:  username,
		Firstname: strings.ToUpper(username[:1]) + username[1:],
		Email:     username + "@example.com",
	}
	m.users[id] = user
	return user
}

func (m *memStore) addFriendship(user1ID, user2ID string) {
	user1ID, user2ID = models.OrderPair(user1ID, user2ID)
	m.friendships = append(m.friendships, models.Friendship{User1ID: user1ID, User2ID: user2ID})
}

// UserStore

func (m *memStore) FindByID(id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *memStore) FindByIDs(ids []string) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) FindCandidates(excludeIDs []string, limit int) ([]models.User, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var users []models.User
	for id, user := range m.users {
		if !excluded[id] {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *memStore) SearchByUsername(query, excludeID string, limit int) ([]models.User, error) {
	query = strings.ToLower(query)

	var users []models.User
	for id, user := range m.users {
		if id == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(user.Username), query) {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// FriendStore

func (m *memStore) AreFriends(user1ID, user2ID string) (bool, error) {
	user1ID, user2ID = models.OrderPair(user1ID, user2ID)
	for _, friendship := range m.friendships {
		if friendship.User1ID == user1ID && friendship.User2ID == user2ID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) HasPendingBetween(user1ID, user2ID string) (bool, error) {
	for _, request := range m.requests {
		if request.Status != models.FriendRequestStatusPending {
			continue
		}
		if (request.SenderID == user1ID && request.RecipientID == user2ID) ||
			(request.SenderID == user2ID && request.RecipientID == user1ID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateRequest(request *models.FriendRequest) error {
	m.nextID++
	request.ID = m.nextID
	request.CreatedAt = time.Now()
	m.requests[request.ID] = request
	return nil
}

func (m *memStore) PendingForRecipient(requestID uint, recipientID string) (*models.FriendRequest, error) {
	request, ok := m.requests[requestID]
	if !ok || request.RecipientID != recipientID || request.Status != models.FriendRequestStatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (m *memStore) PendingForSender(requestID uint, senderID string) (*models.FriendRequest, error) {
	request, ok := m.requests[requestID]
	if !ok || request.SenderID != senderID || request.Status != models.FriendRequestStatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (m *memStore) AcceptRequest(request *models.FriendRequest) error {
	request.Status = models.FriendRequestStatusAccepted
	if friends, _ := m.AreFriends(request.SenderID, request.RecipientID); !friends {
		m.addFriendship(request.SenderID, request.RecipientID)
	}
	return nil
}

func (m *memStore) RejectRequest(request *models.FriendRequest) error {
	request.Status = models.FriendRequestStatusRejected
	request.UpdatedAt = time.Now()
	return nil
}

func (m *memStore) DeleteRequest(request *models.FriendRequest) error {
	delete(m.requests, request.ID)
	return nil
}

func (m *memStore) PendingReceived(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	for _, request := range m.requests {
		if request.RecipientID == userID && request.Status == models.FriendRequestStatusPending {
			enriched := *request
			if sender, ok := m.users[request.SenderID]; ok {
				enriched.Sender = *sender
			}
			requests = append(requests, enriched)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

func (m *memStore) PendingSent(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	for _, request := range m.requests {
		if request.SenderID == userID && request.Status == models.FriendRequestStatusPending {
			enriched := *request
			if recipient, ok := m.users[request.RecipientID]; ok {
				enriched.Recipient = *recipient
			}
			requests = append(requests, enriched)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

func (m *memStore) FriendIDs(userID string) ([]string, error) {
	friendIDs := make([]string, 0)
	for _, friendship := range m.friendships {
		if friendship.User1ID == userID {
			friendIDs = append(friendIDs, friendship.User2ID)
		} else if friendship.User2ID == userID {
			friendIDs = append(friendIDs, friendship.User1ID)
		}
	}
	return friendIDs, nil
}

func (m *memStore) PendingCounterpartyIDs(userID string) ([]string, error) {
	counterpartyIDs := make([]string, 0)
	for _, request := range m.requests {
		if request.Status != models.FriendRequestStatusPending {
			continue
		}
		if request.SenderID == userID {
			counterpartyIDs = append(counterpartyIDs, request.RecipientID)
		} else if request.RecipientID == userID {
			counterpartyIDs = append(counterpartyIDs, request.SenderID)
		}
	}
	return counterpartyIDs, nil
}

func (m *memStore) EdgesTouching(userIDs []string) ([]models.Friendship, error) {
	included := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		included[id] = true
	}

	var edges []models.Friendship
	for _, friendship := range m.friendships {
		if included[friendship.User1ID] || included[friendship.User2ID] {
			edges = append(edges, friendship)
		}
	}
	return edges, nil
}

func (m *memStore) DeleteRejectedBefore(cutoff time.Time) (int64, error) {
	var removed int64
	for id, request := range m.requests {
		if request.Status == models.FriendRequestStatusRejected && request.UpdatedAt.Before(cutoff) {
			delete(m.requests, id)
			removed++
		}
	}
	return removed, nil
}
