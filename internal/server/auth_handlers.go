package server

import (
	"fmt"
	"time"

	"photofeed/internal/models"
	"photofeed/internal/service"
	"photofeed/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Register handles POST /api/auth/register.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username != "" {
		if err := validation.ValidateUsername(req.Username); err != nil {
			return s.fail(c, models.NewValidationError(err.Error()))
		}
	}
	if req.Email != "" {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return s.fail(c, models.NewValidationError(err.Error()))
		}
	}

	user, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return s.fail(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	s.banner.Show(models.BannerSuccess, "Welcome, "+user.Username+"!")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	s.banner.Show(models.BannerSuccess, "Logged in as "+user.Username)
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.authService.Logout(c.UserContext())
	s.banner.Show(models.BannerInfo, "Logged out")
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GetSession handles GET /api/auth/session. It exposes the single-slot
// session: the latest record of the logged-in user, or authenticated=false.
func (s *Server) GetSession(c *fiber.Ctx) error {
	user := s.authService.CurrentUser(c.UserContext())
	return c.JSON(fiber.Map{
		"authenticated": user != nil,
		"loading":       s.authService.Loading(),
		"user":          user,
	})
}

// fail surfaces the error on the notification banner and writes the error
// response; the banner mirrors what the screens would show the user.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	s.banner.Show(models.BannerError, err.Error())
	return models.RespondWithError(c, err)
}

// generateToken creates a JWT token for the given user id and username.
func (s *Server) generateToken(userID, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iss":      "photofeed-api",
		"aud":      "photofeed-client",
		"exp":      now.Add(time.Hour * 24 * 7).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.NewString()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
