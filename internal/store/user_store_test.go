package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserStore() UserStore {
	return NewUserStore(nil)
}

func TestUserStore_CreateAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	a := s.Create(ctx, CreateUserInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	b := s.Create(ctx, CreateUserInput{Username: "bob", Email: "bob@example.com", Password: "pw"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Friends)
	assert.NotNil(t, a.Friends)
	assert.False(t, a.CreatedAt.IsZero())

	users := s.List(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserStore_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	created := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})

	got := s.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	assert.Nil(t, s.GetByID(ctx, "missing"))
}

func TestUserStore_GetByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})

	got := s.GetByEmail(ctx, "a@b.co")
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	assert.Nil(t, s.GetByEmail(ctx, "nobody@b.co"))
}

func TestUserStore_Update_MergesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	created := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw", Bio: "hello"})

	bio := "new bio"
	updated := s.Update(ctx, created.ID, UserPatch{Bio: &bio})
	require.NotNil(t, updated)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "a@b.co", updated.Email)
	// The store never bumps UpdatedAt on its own.
	assert.Equal(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestUserStore_Update_ExplicitUpdatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	created := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})

	bumped := created.UpdatedAt.Add(time.Hour)
	updated := s.Update(ctx, created.ID, UserPatch{UpdatedAt: &bumped})
	require.NotNil(t, updated)
	assert.Equal(t, bumped, updated.UpdatedAt)
}

func TestUserStore_Update_UnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	name := "x"
	assert.Nil(t, s.Update(ctx, "missing", UserPatch{Username: &name}))
}

func TestUserStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	created := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	s.Delete(ctx, created.ID)

	assert.Nil(t, s.GetByID(ctx, created.ID))
	assert.Empty(t, s.List(ctx))

	// Deleting again is a harmless noop.
	s.Delete(ctx, created.ID)
}

func TestUserStore_AddFriend_OneSidedAndIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	a := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	b := s.Create(ctx, CreateUserInput{Username: "bob", Email: "b@b.co", Password: "pw"})

	s.AddFriend(ctx, a.ID, b.ID)
	s.AddFriend(ctx, a.ID, b.ID)

	// Symmetry is the caller's responsibility: only A's list changed.
	assert.Equal(t, []string{b.ID}, s.GetByID(ctx, a.ID).Friends)
	assert.Empty(t, s.GetByID(ctx, b.ID).Friends)
}

func TestUserStore_AddFriend_SelfIsIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	a := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	s.AddFriend(ctx, a.ID, a.ID)

	assert.Empty(t, s.GetByID(ctx, a.ID).Friends)
}

func TestUserStore_RemoveFriend_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	a := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	b := s.Create(ctx, CreateUserInput{Username: "bob", Email: "b@b.co", Password: "pw"})

	s.AddFriend(ctx, a.ID, b.ID)
	s.RemoveFriend(ctx, a.ID, b.ID)
	s.RemoveFriend(ctx, a.ID, b.ID)

	assert.Empty(t, s.GetByID(ctx, a.ID).Friends)
}

func TestUserStore_SnapshotIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestUserStore()

	a := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	b := s.Create(ctx, CreateUserInput{Username: "bob", Email: "b@b.co", Password: "pw"})

	before := s.List(ctx)
	s.AddFriend(ctx, a.ID, b.ID)

	// A snapshot taken before a mutation never changes under the reader.
	assert.Empty(t, before[0].Friends)

	// Mutating a returned record does not reach the store.
	got := s.GetByID(ctx, a.ID)
	got.Friends[0] = "tampered"
	assert.Equal(t, []string{b.ID}, s.GetByID(ctx, a.ID).Friends)
}
