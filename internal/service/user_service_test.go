package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofeed/internal/models"
	"photofeed/internal/store"
)

func newUserFixture(t *testing.T) (*UserService, store.UserStore, store.PostStore) {
	t.Helper()
	users := store.NewUserStore(nil)
	posts := store.NewPostStore(nil)
	return NewUserService(users, posts), users, posts
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _ := newUserFixture(t)
	alice := users.Create(ctx, store.CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})

	got, err := svc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetUser(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _ := newUserFixture(t)
	alice := users.Create(ctx, store.CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw", Bio: "old"})

	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: alice.ID,
		Bio:    "new bio",
		Avatar: "https://example.com/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "https://example.com/a.png", updated.Avatar)
	// Untouched fields survive, and the service bumps UpdatedAt.
	assert.Equal(t, "alice", updated.Username)
	assert.False(t, updated.UpdatedAt.Before(alice.UpdatedAt))
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _ := newUserFixture(t)
	alice := users.Create(ctx, store.CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: alice.ID,
		Bio:    strings.Repeat("x", 501),
	})
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	assert.Empty(t, users.GetByID(ctx, alice.ID).Bio)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newUserFixture(t)

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: "missing", Bio: "hi"})
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, posts := newUserFixture(t)

	alice := users.Create(ctx, store.CreateUserInput{Username: "alice", Email: "a@b.co", Password: "pw"})
	bob := users.Create(ctx, store.CreateUserInput{Username: "bob", Email: "b@b.co", Password: "pw"})
	users.AddFriend(ctx, alice.ID, bob.ID)
	users.AddFriend(ctx, bob.ID, alice.ID)

	alicePost := posts.Create(ctx, store.CreatePostInput{OwnerID: alice.ID, ImageURL: "a"})
	bobPost := posts.Create(ctx, store.CreatePostInput{OwnerID: bob.ID, ImageURL: "b"})
	posts.ToggleLike(ctx, bobPost.ID, alice.ID)
	comment := posts.AddComment(ctx, store.AddCommentInput{PostID: bobPost.ID, AuthorID: alice.ID, Content: "nice"})
	require.NotNil(t, comment)
	posts.ToggleCommentLike(ctx, bobPost.ID, comment.ID, alice.ID)

	require.NoError(t, svc.DeleteUser(ctx, alice.ID))

	assert.Nil(t, users.GetByID(ctx, alice.ID))
	assert.Empty(t, users.GetByID(ctx, bob.ID).Friends)
	assert.Nil(t, posts.GetByID(ctx, alicePost.ID))

	remaining := posts.GetByID(ctx, bobPost.ID)
	require.NotNil(t, remaining)
	assert.Empty(t, remaining.LikedBy)
	// Comments the user left elsewhere survive, but their likes are gone.
	require.Len(t, remaining.Comments, 1)
	assert.Equal(t, alice.ID, remaining.Comments[0].AuthorID)
	assert.Empty(t, remaining.Comments[0].LikedBy)
}

func TestUserService_DeleteUser_Unknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newUserFixture(t)

	err := svc.DeleteUser(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
