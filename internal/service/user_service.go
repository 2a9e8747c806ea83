package service

import (
	"context"
	"time"

	"photofeed/internal/models"
	"photofeed/internal/store"
	"photofeed/internal/validation"
)

// UserService provides profile and account business logic.
type UserService struct {
	userStore store.UserStore
	postStore store.PostStore
}

// UpdateProfileInput is a partial profile edit; empty fields are left as-is.
type UpdateProfileInput struct {
	UserID   string
	Username string
	Avatar   string
	Cover    string
	Bio      string
}

// NewUserService returns a new UserService.
func NewUserService(userStore store.UserStore, postStore store.PostStore) *UserService {
	return &UserService{userStore: userStore, postStore: postStore}
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers(ctx context.Context) []models.User {
	return s.userStore.List(ctx)
}

// GetUser returns the user or a NOT_FOUND error.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := s.userStore.GetByID(ctx, id)
	if user == nil {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

// UpdateProfile merges the non-empty fields into the user's record. The
// UpdatedAt bump is explicit here; the store itself never bumps it.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if s.userStore.GetByID(ctx, in.UserID) == nil {
		return nil, models.NewNotFoundError("User", in.UserID)
	}

	patch := store.UserPatch{}
	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		patch.Username = &in.Username
	}
	if in.Bio != "" {
		if err := validation.ValidateBio(in.Bio); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		patch.Bio = &in.Bio
	}
	if in.Avatar != "" {
		patch.Avatar = &in.Avatar
	}
	if in.Cover != "" {
		patch.Cover = &in.Cover
	}
	now := time.Now()
	patch.UpdatedAt = &now

	updated := s.userStore.Update(ctx, in.UserID, patch)
	if updated == nil {
		return nil, models.NewNotFoundError("User", in.UserID)
	}
	return updated, nil
}

// DeleteUser removes the account with cascade cleanup: the id disappears from
// every other friend list and every LikedBy set, and the user's posts go with
// them. Comments the user left on other posts survive with an unknown author.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user := s.userStore.GetByID(ctx, id)
	if user == nil {
		return models.NewNotFoundError("User", id)
	}

	for _, other := range s.userStore.List(ctx) {
		if other.HasFriend(id) {
			s.userStore.RemoveFriend(ctx, other.ID, id)
		}
	}
	s.postStore.DeleteByOwner(ctx, id)
	s.postStore.RemoveLikesBy(ctx, id)
	s.userStore.Delete(ctx, id)
	return nil
}
