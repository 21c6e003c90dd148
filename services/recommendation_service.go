// File: /services/recommendation_service.go
package services

import (
	"fmt"
	"sort"

	"friendlink-api/models"
)

const DefaultRecommendationLimit = 10

// RecommendationService suggests new friends. Users sharing at least one
// friend with the actor are ranked by how many they share; when that
// does not fill the requested limit, the remainder is padded with users
// the actor has no relationship with at all.
type RecommendationService struct {
	users   UserStore
	friends FriendStore
}

func NewRecommendationService(users UserStore, friends FriendStore) *RecommendationService {
	return &RecommendationService{
		users:   users,
		friends: friends,
	}
}

// Recommend returns up to limit suggestions for the actor. Never
// included: the actor, existing friends, and counterparties of pending
// requests in either direction. Ordering is mutual count descending,
// then user id, so re-runs over the same data are stable.
func (s *RecommendationService) Recommend(actorID string, limit int) ([]models.Recommendation, error) {
	if limit < 0 {
		limit = 0
	}
	if limit == 0 {
		return []models.Recommendation{}, nil
	}

	friendIDs, err := s.friends.FriendIDs(actorID)
	if err != nil {
		return nil, fmt.Errorf("listing friend ids: %w", err)
	}

	pendingIDs, err := s.friends.PendingCounterpartyIDs(actorID)
	if err != nil {
		return nil, fmt.Errorf("listing pending counterparties: %w", err)
	}

	excluded := make(map[string]bool, len(friendIDs)+len(pendingIDs)+1)
	excluded[actorID] = true
	for _, id := range friendIDs {
		excluded[id] = true
	}
	for _, id := range pendingIDs {
		excluded[id] = true
	}

	mutualCounts, err := s.countMutualFriends(friendIDs, excluded)
	if err != nil {
		return nil, err
	}

	recommendations, err := s.rankScored(mutualCounts)
	if err != nil {
		return nil, err
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	if len(recommendations) < limit {
		fill, err := s.randomFill(excluded, mutualCounts, limit-len(recommendations))
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, fill...)
	}

	return recommendations, nil
}

// countMutualFriends walks every friendship edge incident to one of the
// actor's friends. The opposite endpoint of each such edge gains one
// mutual friend, unless it is excluded.
func (s *RecommendationService) countMutualFriends(friendIDs []string, excluded map[string]bool) (map[string]int, error) {
	if len(friendIDs) == 0 {
		return map[string]int{}, nil
	}

	friendSet := make(map[string]bool, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = true
	}

	edges, err := s.friends.EdgesTouching(friendIDs)
	if err != nil {
		return nil, fmt.Errorf("loading friendship edges: %w", err)
	}

	counts := make(map[string]int)
	for _, edge := range edges {
		if friendSet[edge.User1ID] && !excluded[edge.User2ID] {
			counts[edge.User2ID]++
		}
		if friendSet[edge.User2ID] && !excluded[edge.User1ID] {
			counts[edge.User1ID]++
		}
	}

	return counts, nil
}

func (s *RecommendationService) rankScored(counts map[string]int) ([]models.Recommendation, error) {
	if len(counts) == 0 {
		return []models.Recommendation{}, nil
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	users, err := s.users.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("resolving scored candidates: %w", err)
	}

	recommendations := make([]models.Recommendation, 0, len(users))
	for _, user := range users {
		recommendations = append(recommendations, models.Recommendation{
			ID:                 user.ID,
			Username:           user.Username,
			Firstname:          user.Firstname,
			Lastname:           user.Lastname,
			Email:              user.Email,
			MutualFriendsCount: counts[user.ID],
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].MutualFriendsCount != recommendations[j].MutualFriendsCount {
			return recommendations[i].MutualFriendsCount > recommendations[j].MutualFriendsCount
		}
		return recommendations[i].ID < recommendations[j].ID
	})

	return recommendations, nil
}

func (s *RecommendationService) randomFill(excluded map[string]bool, scored map[string]int, remaining int) ([]models.Recommendation, error) {
	excludeIDs := make([]string, 0, len(excluded)+len(scored))
	for id := range excluded {
		excludeIDs = append(excludeIDs, id)
	}
	for id := range scored {
		excludeIDs = append(excludeIDs, id)
	}

	users, err := s.users.FindCandidates(excludeIDs, remaining)
	if err != nil {
		return nil, fmt.Errorf("loading fill candidates: %w", err)
	}

	fill := make([]models.Recommendation, 0, len(users))
	for _, user := range users {
		fill = append(fill, models.Recommendation{
			ID:                 user.ID,
			Username:           user.Username,
			Firstname:          user.Firstname,
			Lastname:           user.Lastname,
			Email:              user.Email,
			MutualFriendsCount: 0,
		})
	}

	return fill, nil
}
