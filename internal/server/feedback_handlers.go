package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeedback handles GET /api/feedback, returning the current banner state.
func (s *Server) GetFeedback(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"feedback": s.banner.Current()})
}

// HideFeedback handles POST /api/feedback/hide. The last kind and message are
// retained; only visibility changes.
func (s *Server) HideFeedback(c *fiber.Ctx) error {
	s.banner.Hide()
	return c.JSON(fiber.Map{"feedback": s.banner.Current()})
}
