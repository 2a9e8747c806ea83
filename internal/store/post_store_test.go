package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostStore() PostStore {
	return NewPostStore(nil)
}

func TestPostStore_Create_PrependsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	first := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img1"})
	second := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img2"})

	posts := s.List(ctx)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.NotNil(t, posts[0].LikedBy)
	assert.NotNil(t, posts[0].Comments)
}

func TestPostStore_Edit_BumpsUpdatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	created := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img", Caption: "old"})

	caption := "new"
	updated := s.Edit(ctx, created.ID, PostPatch{Caption: &caption})
	require.NotNil(t, updated)
	assert.Equal(t, "new", updated.Caption)
	assert.Equal(t, "img", updated.ImageURL)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	assert.Nil(t, s.Edit(ctx, "missing", PostPatch{Caption: &caption}))
}

func TestPostStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	created := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})
	s.Delete(ctx, created.ID)

	assert.Nil(t, s.GetByID(ctx, created.ID))
	assert.Empty(t, s.List(ctx))
}

func TestPostStore_AddComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	post := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})

	c1 := s.AddComment(ctx, AddCommentInput{PostID: post.ID, AuthorID: "u2", Content: "first"})
	require.NotNil(t, c1)
	c2 := s.AddComment(ctx, AddCommentInput{PostID: post.ID, AuthorID: "u1", Content: "second", ParentID: &c1.ID})
	require.NotNil(t, c2)

	got := s.GetByID(ctx, post.ID)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "first", got.Comments[0].Content)
	assert.Equal(t, post.ID, got.Comments[0].PostID)
	require.NotNil(t, got.Comments[1].ParentID)
	assert.Equal(t, c1.ID, *got.Comments[1].ParentID)

	assert.Nil(t, s.AddComment(ctx, AddCommentInput{PostID: "missing", AuthorID: "u1", Content: "x"}))
}

func TestPostStore_ToggleLike_Involution(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	post := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})

	s.ToggleLike(ctx, post.ID, "u2")
	liked := s.GetByID(ctx, post.ID)
	assert.Equal(t, []string{"u2"}, liked.LikedBy)

	s.ToggleLike(ctx, post.ID, "u2")
	unliked := s.GetByID(ctx, post.ID)
	assert.Empty(t, unliked.LikedBy)
}

func TestPostStore_ToggleLike_AtMostOncePerUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	post := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})

	s.ToggleLike(ctx, post.ID, "u2")
	s.ToggleLike(ctx, post.ID, "u3")
	s.ToggleLike(ctx, post.ID, "u2")
	s.ToggleLike(ctx, post.ID, "u2")

	got := s.GetByID(ctx, post.ID)
	assert.Equal(t, []string{"u3", "u2"}, got.LikedBy)
}

func TestPostStore_ToggleCommentLike_Involution(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	post := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})
	comment := s.AddComment(ctx, AddCommentInput{PostID: post.ID, AuthorID: "u2", Content: "hi"})
	require.NotNil(t, comment)

	s.ToggleCommentLike(ctx, post.ID, comment.ID, "u1")
	got := s.GetByID(ctx, post.ID)
	assert.Equal(t, []string{"u1"}, got.Comments[0].LikedBy)

	s.ToggleCommentLike(ctx, post.ID, comment.ID, "u1")
	got = s.GetByID(ctx, post.ID)
	assert.Empty(t, got.Comments[0].LikedBy)

	// Unknown comment ids are noops, not errors.
	s.ToggleCommentLike(ctx, post.ID, "missing", "u1")
}

func TestPostStore_ByOwner_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	p1 := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "a"})
	s.Create(ctx, CreatePostInput{OwnerID: "u2", ImageURL: "b"})
	p3 := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "c"})

	mine := s.ByOwner(ctx, "u1")
	require.Len(t, mine, 2)
	assert.Equal(t, p3.ID, mine[0].ID)
	assert.Equal(t, p1.ID, mine[1].ID)

	assert.Empty(t, s.ByOwner(ctx, "nobody"))
}

func TestPostStore_CascadeHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	mine := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "a"})
	theirs := s.Create(ctx, CreatePostInput{OwnerID: "u2", ImageURL: "b"})
	comment := s.AddComment(ctx, AddCommentInput{PostID: theirs.ID, AuthorID: "u1", Content: "hi"})
	require.NotNil(t, comment)
	s.ToggleLike(ctx, theirs.ID, "u1")
	s.ToggleCommentLike(ctx, theirs.ID, comment.ID, "u1")

	s.DeleteByOwner(ctx, "u1")
	s.RemoveLikesBy(ctx, "u1")

	assert.Nil(t, s.GetByID(ctx, mine.ID))
	remaining := s.GetByID(ctx, theirs.ID)
	require.NotNil(t, remaining)
	assert.Empty(t, remaining.LikedBy)
	require.Len(t, remaining.Comments, 1)
	assert.Empty(t, remaining.Comments[0].LikedBy)
}

func TestPostStore_SnapshotIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestPostStore()

	post := s.Create(ctx, CreatePostInput{OwnerID: "u1", ImageURL: "img"})

	before := s.List(ctx)
	s.ToggleLike(ctx, post.ID, "u2")

	assert.Empty(t, before[0].LikedBy)

	got := s.GetByID(ctx, post.ID)
	got.LikedBy[0] = "tampered"
	assert.Equal(t, []string{"u2"}, s.GetByID(ctx, post.ID).LikedBy)
}
