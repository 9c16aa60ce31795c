package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shopmonitor/condb"
	"shopmonitor/models"
	"shopmonitor/utils"
)

func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.store.ListEmployees(c.UserContext())
	if err != nil {
		return h.dbError(c, "Employees fetch error", err)
	}
	return c.JSON(employees)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input: " + err.Error(),
		})
	}

	user, err := h.store.FindUserByUsername(c.UserContext(), input.Username)
	if err != nil {
		if errors.Is(err, condb.ErrUserNotFound) {
			return h.invalidCredentials(c, input.Username)
		}
		return h.dbError(c, "Login database error", err)
	}

	check, err := utils.CheckPassword(user.Password, input.Password)
	if err != nil {
		return h.dbError(c, "Login password check error", err)
	}
	if !check.Match {
		return h.invalidCredentials(c, input.Username)
	}
	if check.Legacy {
		h.log.Warn("Password stored in plain text, re-seed or re-hash this user",
			zap.String("username", user.Username),
		)
	}

	token, err := h.tokens.GenerateJWTToken(user.Username, user.Role)
	if err != nil {
		h.log.Error("Token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
		})
	}
	h.tokens.SetJWTCookie(c, token)

	h.log.Info("Login successful", zap.String("username", user.Username))
	return c.JSON(fiber.Map{
		"success": true,
		"role":    user.Role,
		"token":   token,
	})
}

func (h *Handler) invalidCredentials(c *fiber.Ctx, username string) error {
	h.log.Info("Invalid login attempt", zap.String("username", username))
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid credentials",
	})
}
