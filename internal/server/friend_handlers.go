package server

import (
	"photofeed/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/friends.
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.Friends(c.UserContext(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"friends": friends})
}

// AddFriend handles POST /api/friends/:userId.
func (s *Server) AddFriend(c *fiber.Ctx) error {
	if err := s.friendService.Befriend(c.UserContext(), userID(c), c.Params("userId")); err != nil {
		return s.fail(c, err)
	}
	s.banner.Show(models.BannerSuccess, "Friend added")
	return c.JSON(fiber.Map{"message": "Friend added"})
}

// RemoveFriend handles DELETE /api/friends/:userId.
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	if err := s.friendService.Unfriend(c.UserContext(), userID(c), c.Params("userId")); err != nil {
		return s.fail(c, err)
	}
	s.banner.Show(models.BannerInfo, "Friend removed")
	return c.JSON(fiber.Map{"message": "Friend removed"})
}
