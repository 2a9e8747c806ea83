package server

import (
	"photofeed/internal/models"
	"photofeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts (the full feed, newest first).
func (s *Server) GetPosts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"posts": s.postService.ListPosts(c.UserContext())})
}

// GetFeed handles GET /api/posts/feed (the caller's own and friends' posts).
func (s *Server) GetFeed(c *fiber.Ctx) error {
	posts, err := s.postService.Feed(c.UserContext(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		ImageURL string `json:"image_url"`
		Caption  string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		OwnerID:  userID(c),
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	})
	if err != nil {
		return s.fail(c, err)
	}

	s.banner.Show(models.BannerSuccess, "Post published")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /api/posts/:id.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		ImageURL string  `json:"image_url"`
		Caption  *string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.EditPost(c.UserContext(), service.EditPostInput{
		PostID:   c.Params("id"),
		EditorID: userID(c),
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	})
	if err != nil {
		return s.fail(c, err)
	}

	s.banner.Show(models.BannerSuccess, "Post updated")
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.UserContext(), c.Params("id"), userID(c)); err != nil {
		return s.fail(c, err)
	}
	s.banner.Show(models.BannerInfo, "Post deleted")
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like (a toggle).
func (s *Server) LikePost(c *fiber.Ctx) error {
	post, err := s.postService.ToggleLike(c.UserContext(), c.Params("id"), userID(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"post":  post,
		"likes": len(post.LikedBy),
	})
}

// GetComments handles GET /api/posts/:id/comments, returning the
// reconstructed reply forest.
func (s *Server) GetComments(c *fiber.Ctx) error {
	thread, err := s.postService.CommentThread(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"comments": thread})
}

// CreateComment handles POST /api/posts/:id/comments.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content  string  `json:"content"`
		ParentID *string `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.AddComment(c.UserContext(), service.AddCommentInput{
		PostID:   c.Params("id"),
		AuthorID: userID(c),
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return s.fail(c, err)
	}

	s.banner.Show(models.BannerSuccess, "Comment added")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// LikeComment handles POST /api/posts/:id/comments/:commentId/like (a toggle).
func (s *Server) LikeComment(c *fiber.Ctx) error {
	post, err := s.postService.ToggleCommentLike(
		c.UserContext(), c.Params("id"), c.Params("commentId"), userID(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}
