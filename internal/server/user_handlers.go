package server

import (
	"photofeed/internal/models"
	"photofeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"users": s.userService.ListUsers(c.UserContext())})
}

// GetMyProfile handles GET /api/users/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetUserProfile handles GET /api/users/:id.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateMyProfile handles PUT /api/users/me.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
		Cover    string `json:"cover"`
		Bio      string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:   userID(c),
		Username: req.Username,
		Avatar:   req.Avatar,
		Cover:    req.Cover,
		Bio:      req.Bio,
	})
	if err != nil {
		return s.fail(c, err)
	}

	s.banner.Show(models.BannerSuccess, "Profile updated")
	return c.JSON(fiber.Map{"user": user})
}

// DeleteMyAccount handles DELETE /api/users/me.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	id := userID(c)
	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return s.fail(c, err)
	}
	s.authService.Logout(c.UserContext())
	s.banner.Show(models.BannerInfo, "Account deleted")
	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetUserPosts handles GET /api/users/:id/posts.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.userService.GetUser(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"posts": s.postService.PostsByOwner(c.UserContext(), id)})
}
