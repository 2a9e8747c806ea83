package service

import (
	"context"

	"photofeed/internal/models"
	"photofeed/internal/store"
)

// FriendService provides friendship business logic.
//
// The store's AddFriend/RemoveFriend are one-sided by contract; this service
// is the caller that keeps the relation symmetric by mirroring every change
// on both users, the way the Friends screen drives it.
type FriendService struct {
	userStore store.UserStore
}

// NewFriendService returns a new FriendService.
func NewFriendService(userStore store.UserStore) *FriendService {
	return &FriendService{userStore: userStore}
}

// Befriend makes userID and targetID mutual friends. Idempotent.
func (s *FriendService) Befriend(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return models.NewValidationError("Cannot add yourself as a friend")
	}
	if s.userStore.GetByID(ctx, userID) == nil {
		return models.NewNotFoundError("User", userID)
	}
	if s.userStore.GetByID(ctx, targetID) == nil {
		return models.NewNotFoundError("User", targetID)
	}

	s.userStore.AddFriend(ctx, userID, targetID)
	s.userStore.AddFriend(ctx, targetID, userID)
	return nil
}

// Unfriend removes the mutual friendship. Idempotent.
func (s *FriendService) Unfriend(ctx context.Context, userID, targetID string) error {
	if s.userStore.GetByID(ctx, userID) == nil {
		return models.NewNotFoundError("User", userID)
	}
	if s.userStore.GetByID(ctx, targetID) == nil {
		return models.NewNotFoundError("User", targetID)
	}

	s.userStore.RemoveFriend(ctx, userID, targetID)
	s.userStore.RemoveFriend(ctx, targetID, userID)
	return nil
}

// Friends resolves the user's friend ids to records, skipping ids that no
// longer resolve.
func (s *FriendService) Friends(ctx context.Context, userID string) ([]models.User, error) {
	user := s.userStore.GetByID(ctx, userID)
	if user == nil {
		return nil, models.NewNotFoundError("User", userID)
	}

	friends := make([]models.User, 0, len(user.Friends))
	for _, id := range user.Friends {
		if friend := s.userStore.GetByID(ctx, id); friend != nil {
			friends = append(friends, *friend)
		}
	}
	return friends, nil
}
