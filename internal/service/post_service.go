package service

import (
	"context"

	"photofeed/internal/models"
	"photofeed/internal/observability"
	"photofeed/internal/store"
	"photofeed/internal/validation"
)

// PostService provides post, comment and like business logic.
type PostService struct {
	postStore store.PostStore
	userStore store.UserStore
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	OwnerID  string
	ImageURL string
	Caption  string
}

// EditPostInput is a partial post edit by its owner.
type EditPostInput struct {
	PostID   string
	EditorID string
	ImageURL string
	Caption  *string
}

// AddCommentInput carries the fields for a new comment.
type AddCommentInput struct {
	PostID   string
	AuthorID string
	Content  string
	ParentID *string
}

// NewPostService returns a new PostService.
func NewPostService(postStore store.PostStore, userStore store.UserStore) *PostService {
	return &PostService{postStore: postStore, userStore: userStore}
}

// ListPosts returns the full feed, newest first.
func (s *PostService) ListPosts(ctx context.Context) []models.Post {
	return s.postStore.List(ctx)
}

// GetPost returns the post or a NOT_FOUND error.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post := s.postStore.GetByID(ctx, id)
	if post == nil {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

// CreatePost validates and creates a post for its owner.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.ImageURL == "" {
		return nil, models.NewValidationError("Image URL is required")
	}
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if s.userStore.GetByID(ctx, in.OwnerID) == nil {
		return nil, models.NewNotFoundError("User", in.OwnerID)
	}

	post := s.postStore.Create(ctx, store.CreatePostInput{
		OwnerID:  in.OwnerID,
		ImageURL: in.ImageURL,
		Caption:  in.Caption,
	})
	return &post, nil
}

// EditPost updates caption and/or image of the editor's own post. Owner,
// timestamps, comments and likes are not editable; UpdatedAt is bumped by
// the store.
func (s *PostService) EditPost(ctx context.Context, in EditPostInput) (*models.Post, error) {
	post := s.postStore.GetByID(ctx, in.PostID)
	if post == nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}
	if post.OwnerID != in.EditorID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}

	patch := store.PostPatch{}
	if in.ImageURL != "" {
		patch.ImageURL = &in.ImageURL
	}
	if in.Caption != nil {
		if err := validation.ValidateCaption(*in.Caption); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		patch.Caption = in.Caption
	}

	updated := s.postStore.Edit(ctx, in.PostID, patch)
	if updated == nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}
	return updated, nil
}

// DeletePost removes the caller's own post.
func (s *PostService) DeletePost(ctx context.Context, postID, callerID string) error {
	post := s.postStore.GetByID(ctx, postID)
	if post == nil {
		return models.NewNotFoundError("Post", postID)
	}
	if post.OwnerID != callerID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	s.postStore.Delete(ctx, postID)
	return nil
}

// AddComment appends a comment to a post. A parent id, when given, must name
// an existing comment on the same post; because a comment can only reference
// one created before it, the per-post comment graph stays a forest.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	post := s.postStore.GetByID(ctx, in.PostID)
	if post == nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}
	if in.ParentID != nil {
		found := false
		for i := range post.Comments {
			if post.Comments[i].ID == *in.ParentID {
				found = true
				break
			}
		}
		if !found {
			return nil, models.NewValidationError("Parent comment does not belong to this post")
		}
	}

	comment := s.postStore.AddComment(ctx, store.AddCommentInput{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Content:  in.Content,
		ParentID: in.ParentID,
	})
	if comment == nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}
	return comment, nil
}

// ToggleLike flips the caller's like on a post.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	if s.postStore.GetByID(ctx, postID) == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	s.postStore.ToggleLike(ctx, postID, userID)
	// The post can be deleted between the toggle and the re-read.
	post := s.postStore.GetByID(ctx, postID)
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// ToggleCommentLike flips the caller's like on one comment of a post.
func (s *PostService) ToggleCommentLike(ctx context.Context, postID, commentID, userID string) (*models.Post, error) {
	post := s.postStore.GetByID(ctx, postID)
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	found := false
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			found = true
			break
		}
	}
	if !found {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	s.postStore.ToggleCommentLike(ctx, postID, commentID, userID)
	updated := s.postStore.GetByID(ctx, postID)
	if updated == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return updated, nil
}

// PostsByOwner filters the feed to one owner, preserving overall order.
func (s *PostService) PostsByOwner(ctx context.Context, ownerID string) []models.Post {
	return s.postStore.ByOwner(ctx, ownerID)
}

// Feed returns the posts visible on the user's home feed: their own and
// their friends', in the store's newest-first order.
func (s *PostService) Feed(ctx context.Context, userID string) ([]models.Post, error) {
	user := s.userStore.GetByID(ctx, userID)
	if user == nil {
		return nil, models.NewNotFoundError("User", userID)
	}

	visible := make(map[string]bool, len(user.Friends)+1)
	visible[userID] = true
	for _, id := range user.Friends {
		visible[id] = true
	}

	var feed []models.Post
	for _, post := range s.postStore.List(ctx) {
		if visible[post.OwnerID] {
			feed = append(feed, post)
		}
	}
	return feed, nil
}

// CommentThread returns the post's comments as a reconstructed forest.
func (s *PostService) CommentThread(ctx context.Context, postID string) ([]*models.CommentNode, error) {
	post := s.postStore.GetByID(ctx, postID)
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	forest := models.BuildForest(post.Comments)
	for _, root := range forest {
		if root.Comment.ParentID != nil {
			observability.DanglingParentsTotal.Inc()
		}
	}
	return forest, nil
}
