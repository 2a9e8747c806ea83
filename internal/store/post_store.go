package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"photofeed/internal/models"
	"photofeed/internal/observability"
)

// PostStore defines the operations on the post collection.
type PostStore interface {
	// List returns the current snapshot, newest first.
	List(ctx context.Context) []models.Post
	// GetByID returns the post or nil; absence is not an error.
	GetByID(ctx context.Context, id string) *models.Post
	// Create prepends a new post, so the collection stays in
	// reverse-chronological order without sorting, and returns it.
	Create(ctx context.Context, in CreatePostInput) models.Post
	// Edit merges the present patch fields, bumps UpdatedAt and returns the
	// result, or nil if the id is unknown.
	Edit(ctx context.Context, id string, patch PostPatch) *models.Post
	// Delete removes the post and everything hanging off it.
	Delete(ctx context.Context, id string)
	// AddComment appends a comment to the post's flat comment sequence and
	// returns it, or nil if the post is unknown. ParentID is stored as given;
	// referential checks live in the service layer.
	AddComment(ctx context.Context, in AddCommentInput) *models.Comment
	// ToggleLike flips userID's membership in the post's LikedBy set.
	// Applying it twice restores the original set.
	ToggleLike(ctx context.Context, postID, userID string)
	// ToggleCommentLike flips userID's membership in one comment's LikedBy
	// set, scoped to the given post.
	ToggleCommentLike(ctx context.Context, postID, commentID, userID string)
	// ByOwner filters the snapshot to one owner, preserving overall order.
	ByOwner(ctx context.Context, ownerID string) []models.Post
	// DeleteByOwner removes every post owned by ownerID (cascade cleanup).
	DeleteByOwner(ctx context.Context, ownerID string)
	// RemoveLikesBy strips userID from every post and comment LikedBy set
	// (cascade cleanup).
	RemoveLikesBy(ctx context.Context, userID string)
}

// CreatePostInput carries the caller-supplied fields for a new post.
type CreatePostInput struct {
	OwnerID  string
	ImageURL string
	Caption  string
}

// PostPatch is a partial update; nil fields are left untouched. Owner,
// timestamps, likes and comments are not patchable.
type PostPatch struct {
	ImageURL *string
	Caption  *string
}

// AddCommentInput carries the caller-supplied fields for a new comment.
type AddCommentInput struct {
	PostID   string
	AuthorID string
	Content  string
	ParentID *string
}

type postStore struct {
	mu     sync.RWMutex
	posts  []models.Post
	logger *observability.StoreLogger
	clock  func() time.Time
}

// NewPostStore returns an empty in-memory PostStore.
func NewPostStore(logger *observability.Logger) PostStore {
	return &postStore{
		logger: observability.NewStoreLogger("posts", logger),
		clock:  time.Now,
	}
}

func (s *postStore) List(ctx context.Context) []models.Post {
	s.mu.RLock()
	snapshot := s.posts
	s.mu.RUnlock()

	out := make([]models.Post, len(snapshot))
	for i, p := range snapshot {
		out[i] = p.Clone()
	}
	return out
}

func (s *postStore) GetByID(ctx context.Context, id string) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i].Clone()
			return &p
		}
	}
	return nil
}

func (s *postStore) Create(ctx context.Context, in CreatePostInput) models.Post {
	now := s.clock()
	post := models.Post{
		ID:        newID(),
		OwnerID:   in.OwnerID,
		ImageURL:  in.ImageURL,
		Caption:   in.Caption,
		LikedBy:   []string{},
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	next := make([]models.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "create", map[string]interface{}{"post_id": post.ID, "owner_id": in.OwnerID})
	return post.Clone()
}

func (s *postStore) Edit(ctx context.Context, id string, patch PostPatch) *models.Post {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "edit", map[string]interface{}{"post_id": id})
		return nil
	}

	updated := s.posts[idx].Clone()
	if patch.ImageURL != nil {
		updated.ImageURL = *patch.ImageURL
	}
	if patch.Caption != nil {
		updated.Caption = *patch.Caption
	}
	updated.UpdatedAt = s.clock()

	next := slices.Clone(s.posts)
	next[idx] = updated
	s.posts = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "edit", map[string]interface{}{"post_id": id})
	out := updated.Clone()
	return &out
}

func (s *postStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	next := make([]models.Post, 0, len(s.posts))
	removed := false
	for _, p := range s.posts {
		if p.ID == id {
			removed = true
			continue
		}
		next = append(next, p)
	}
	s.posts = next
	s.mu.Unlock()

	if removed {
		s.logger.LogMutation(ctx, "delete", map[string]interface{}{"post_id": id})
	} else {
		s.logger.LogNoop(ctx, "delete", map[string]interface{}{"post_id": id})
	}
}

func (s *postStore) AddComment(ctx context.Context, in AddCommentInput) *models.Comment {
	now := s.clock()
	comment := models.Comment{
		ID:        newID(),
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		LikedBy:   []string{},
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	idx := s.indexOf(in.PostID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "add_comment", map[string]interface{}{"post_id": in.PostID})
		return nil
	}

	updated := s.posts[idx].Clone()
	updated.Comments = append(updated.Comments, comment)

	next := slices.Clone(s.posts)
	next[idx] = updated
	s.posts = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "add_comment", map[string]interface{}{
		"post_id":    in.PostID,
		"comment_id": comment.ID,
	})
	out := comment.Clone()
	return &out
}

func (s *postStore) ToggleLike(ctx context.Context, postID, userID string) {
	s.mu.Lock()
	idx := s.indexOf(postID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "toggle_like", map[string]interface{}{"post_id": postID})
		return
	}

	updated := s.posts[idx].Clone()
	updated.LikedBy = toggleMembership(updated.LikedBy, userID)

	next := slices.Clone(s.posts)
	next[idx] = updated
	s.posts = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "toggle_like", map[string]interface{}{"post_id": postID, "user_id": userID})
}

func (s *postStore) ToggleCommentLike(ctx context.Context, postID, commentID, userID string) {
	s.mu.Lock()
	idx := s.indexOf(postID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "toggle_comment_like", map[string]interface{}{"post_id": postID})
		return
	}

	updated := s.posts[idx].Clone()
	found := false
	for i := range updated.Comments {
		if updated.Comments[i].ID == commentID {
			updated.Comments[i].LikedBy = toggleMembership(updated.Comments[i].LikedBy, userID)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		s.logger.LogNoop(ctx, "toggle_comment_like", map[string]interface{}{
			"post_id":    postID,
			"comment_id": commentID,
		})
		return
	}

	next := slices.Clone(s.posts)
	next[idx] = updated
	s.posts = next
	s.mu.Unlock()

	s.logger.LogMutation(ctx, "toggle_comment_like", map[string]interface{}{
		"post_id":    postID,
		"comment_id": commentID,
		"user_id":    userID,
	})
}

func (s *postStore) ByOwner(ctx context.Context, ownerID string) []models.Post {
	s.mu.RLock()
	snapshot := s.posts
	s.mu.RUnlock()

	var out []models.Post
	for i := range snapshot {
		if snapshot[i].OwnerID == ownerID {
			out = append(out, snapshot[i].Clone())
		}
	}
	return out
}

func (s *postStore) DeleteByOwner(ctx context.Context, ownerID string) {
	s.mu.Lock()
	next := make([]models.Post, 0, len(s.posts))
	removed := 0
	for _, p := range s.posts {
		if p.OwnerID == ownerID {
			removed++
			continue
		}
		next = append(next, p)
	}
	s.posts = next
	s.mu.Unlock()

	if removed > 0 {
		s.logger.LogMutation(ctx, "delete_by_owner", map[string]interface{}{
			"owner_id": ownerID,
			"removed":  removed,
		})
	} else {
		s.logger.LogNoop(ctx, "delete_by_owner", map[string]interface{}{"owner_id": ownerID})
	}
}

func (s *postStore) RemoveLikesBy(ctx context.Context, userID string) {
	s.mu.Lock()
	changed := false
	next := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		updated := p.Clone()
		if updated.LikedByUser(userID) {
			updated.LikedBy = slices.DeleteFunc(updated.LikedBy, func(id string) bool {
				return id == userID
			})
			changed = true
		}
		for j := range updated.Comments {
			if updated.Comments[j].LikedByUser(userID) {
				updated.Comments[j].LikedBy = slices.DeleteFunc(updated.Comments[j].LikedBy, func(id string) bool {
					return id == userID
				})
				changed = true
			}
		}
		next[i] = updated
	}
	if changed {
		s.posts = next
	}
	s.mu.Unlock()

	if changed {
		s.logger.LogMutation(ctx, "remove_likes_by", map[string]interface{}{"user_id": userID})
	} else {
		s.logger.LogNoop(ctx, "remove_likes_by", map[string]interface{}{"user_id": userID})
	}
}

// indexOf returns the index of the post with the given id, or -1.
// Callers must hold the lock.
func (s *postStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// toggleMembership flips the presence of id in the set, preserving insertion
// order for the remaining members.
func toggleMembership(set []string, id string) []string {
	if slices.Contains(set, id) {
		return slices.DeleteFunc(set, func(m string) bool { return m == id })
	}
	return append(set, id)
}
