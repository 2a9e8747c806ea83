package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"photofeed/internal/models"
	"photofeed/internal/observability"
)

// UserStore defines the operations on the user collection.
type UserStore interface {
	// List returns the current snapshot in insertion order.
	List(ctx context.Context) []models.User
	// GetByID returns the user or nil; absence is not an error.
	GetByID(ctx context.Context, id string) *models.User
	// GetByEmail returns the first user with the given email, or nil.
	GetByEmail(ctx context.Context, email string) *models.User
	// Create generates a fresh id, initializes an empty friend list, appends
	// the record and returns it. Email uniqueness is the caller's job.
	Create(ctx context.Context, in CreateUserInput) models.User
	// Update merges the present patch fields into the record and returns the
	// result, or nil if the id is unknown. Nothing is bumped implicitly;
	// callers that want a fresh UpdatedAt set it in the patch.
	Update(ctx context.Context, id string, patch UserPatch) *models.User
	// Delete removes the record. It does not touch other users' friend lists;
	// cascade cleanup lives in the service layer.
	Delete(ctx context.Context, id string)
	// AddFriend adds friendID to userID's friend list. Idempotent; self
	// references are ignored. Symmetry is the caller's responsibility.
	AddFriend(ctx context.Context, userID, friendID string)
	// RemoveFriend removes friendID from userID's friend list. Idempotent;
	// symmetry is the caller's responsibility.
	RemoveFriend(ctx context.Context, userID, friendID string)
}

// CreateUserInput carries the caller-supplied fields for a new user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Avatar   string
	Cover    string
	Bio      string
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Username  *string
	Email     *string
	Password  *string
	Avatar    *string
	Cover     *string
	Bio       *string
	UpdatedAt *time.Time
}

type userStore struct {
	mu     sync.RWMutex
	users  []models.User
	logger *observability.StoreLogger
	clock  func() time.Time
}

// NewUserStore returns an empty in-memory UserStore.
func NewUserStore(logger *observability.Logger) UserStore {
	return &userStore{
		logger: observability.NewStoreLogger("users", logger),
		clock:  time.Now,
	}
}

func (s *userStore) List(ctx context.Context) []models.User {
	s.mu.RLock()
	snapshot := s.users
	s.mu.RUnlock()

	out := make([]models.User, len(snapshot))
	for i, u := range snapshot {
		out[i] = u.Clone()
	}
	return out
}

func (s *userStore) GetByID(ctx context.Context, id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i].Clone()
			return &u
		}
	}
	return nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i].Clone()
			return &u
		}
	}
	return nil
}

func (s *userStore) Create(ctx context.Context, in CreateUserInput) models.User {
	now := s.clock()
	user := models.User{
		ID:        newID(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Avatar:    in.Avatar,
		Cover:     in.Cover,
		Bio:       in.Bio,
		Friends:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	next := make([]models.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	s.users = append(next, user)
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "create", map[string]interface{}{"user_id": user.ID})
	return user.Clone()
}

func (s *userStore) Update(ctx context.Context, id string, patch UserPatch) *models.User {
	s.mu.Lock()
	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "update", map[string]interface{}{"user_id": id})
		return nil
	}

	updated := s.users[idx].Clone()
	if patch.Username != nil {
		updated.Username = *patch.Username
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Password != nil {
		updated.Password = *patch.Password
	}
	if patch.Avatar != nil {
		updated.Avatar = *patch.Avatar
	}
	if patch.Cover != nil {
		updated.Cover = *patch.Cover
	}
	if patch.Bio != nil {
		updated.Bio = *patch.Bio
	}
	if patch.UpdatedAt != nil {
		updated.UpdatedAt = *patch.UpdatedAt
	}

	next := slices.Clone(s.users)
	next[idx] = updated
	s.users = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "update", map[string]interface{}{"user_id": id})
	out := updated.Clone()
	return &out
}

func (s *userStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	next := make([]models.User, 0, len(s.users))
	removed := false
	for _, u := range s.users {
		if u.ID == id {
			removed = true
			continue
		}
		next = append(next, u)
	}
	s.users = next
	s.mu.Unlock()

	if removed {
		s.logger.LogMutation(ctx, "delete", map[string]interface{}{"user_id": id})
	} else {
		s.logger.LogNoop(ctx, "delete", map[string]interface{}{"user_id": id})
	}
}

func (s *userStore) AddFriend(ctx context.Context, userID, friendID string) {
	if userID == friendID {
		s.logger.LogNoop(ctx, "add_friend", map[string]interface{}{"user_id": userID, "friend_id": friendID})
		return
	}

	s.mu.Lock()
	changed := false
	next := slices.Clone(s.users)
	for i := range next {
		if next[i].ID != userID || next[i].HasFriend(friendID) {
			continue
		}
		updated := next[i].Clone()
		updated.Friends = append(updated.Friends, friendID)
		next[i] = updated
		changed = true
	}
	if changed {
		s.users = next
	}
	s.mu.Unlock()

	if changed {
		s.logger.LogMutation(ctx, "add_friend", map[string]interface{}{"user_id": userID, "friend_id": friendID})
	} else {
		s.logger.LogNoop(ctx, "add_friend", map[string]interface{}{"user_id": userID, "friend_id": friendID})
	}
}

func (s *userStore) RemoveFriend(ctx context.Context, userID, friendID string) {
	s.mu.Lock()
	changed := false
	next := slices.Clone(s.users)
	for i := range next {
		if next[i].ID != userID || !next[i].HasFriend(friendID) {
			continue
		}
		updated := next[i].Clone()
		updated.Friends = slices.DeleteFunc(updated.Friends, func(id string) bool {
			return id == friendID
		})
		next[i] = updated
		changed = true
	}
	if changed {
		s.users = next
	}
	s.mu.Unlock()

	if changed {
		s.logger.LogMutation(ctx, "remove_friend", map[string]interface{}{"user_id": userID, "friend_id": friendID})
	} else {
		s.logger.LogNoop(ctx, "remove_friend", map[string]interface{}{"user_id": userID, "friend_id": friendID})
	}
}
