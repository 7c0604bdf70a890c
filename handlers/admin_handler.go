package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

func ListPendingReviews(c *fiber.Ctx) error {
	reviews, err := svc.Moderation.ListPendingReviews(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

func ApproveReview(c *fiber.Ctx) error {
	reviewID, err := utils.ParseUUIDParam(c, "reviewId")
	if err != nil {
		return err
	}
	review, err := svc.Moderation.ApproveReview(c.Context(), reviewID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

func RejectReview(c *fiber.Ctx) error {
	reviewID, err := utils.ParseUUIDParam(c, "reviewId")
	if err != nil {
		return err
	}
	review, err := svc.Moderation.RejectReview(c.Context(), reviewID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

type CreateFlagRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ContentID   string `json:"content_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,min=3"`
}

// FlagContent is open to any authenticated user; resolving flags is
// admin-only.
func FlagContent(c *fiber.Ctx) error {
	var req CreateFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	contentID, _ := uuid.Parse(req.ContentID)
	flag, err := svc.Moderation.CreateFlag(c.Context(), utils.CurrentUserID(c), services.CreateFlagInput{
		ContentType: req.ContentType,
		ContentID:   contentID,
		Reason:      req.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(flag)
}

func ListFlags(c *fiber.Ctx) error {
	page, err := svc.Moderation.ListFlags(
		c.Context(),
		c.Query("status"),
		c.Query("content_type"),
		utils.QueryInt(c, "page", 0),
		utils.QueryInt(c, "page_size", 0),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

type UpdateFlagRequest struct {
	Status string `json:"status" validate:"required"`
}

func UpdateFlagStatus(c *fiber.Ctx) error {
	flagID, err := utils.ParseUUIDParam(c, "flagId")
	if err != nil {
		return err
	}

	var req UpdateFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	flag, err := svc.Moderation.UpdateFlagStatus(c.Context(), flagID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(flag)
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

func SetTutorVerified(c *fiber.Ctx) error {
	tutorID, err := utils.ParseUUIDParam(c, "tutorId")
	if err != nil {
		return err
	}

	var req SetVerifiedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	profile, err := svc.Moderation.SetTutorVerified(c.Context(), tutorID, req.Verified)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

func SetUserActive(c *fiber.Ctx) error {
	userID, err := utils.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	user, err := svc.Moderation.SetUserActive(c.Context(), userID, req.Active)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func GetAllUsers(c *fiber.Ctx) error {
	users, err := svc.Moderation.ListUsers(c.Context(), c.Query("role"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func GetAllTutors(c *fiber.Ctx) error {
	var verified *bool
	if raw := c.Query("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid verified"})
		}
		verified = &v
	}
	tutors, err := svc.Moderation.ListTutors(c.Context(), verified)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tutors)
}

func GetPlatformStats(c *fiber.Ctx) error {
	stats, err := svc.Moderation.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
