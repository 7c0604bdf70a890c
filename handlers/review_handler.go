package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

type CreateReviewRequest struct {
	TutorID   string  `json:"tutor_id" validate:"required,uuid"`
	BookingID *string `json:"booking_id" validate:"omitempty,uuid"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment" validate:"max=2000"`
}

func CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	input := services.CreateReviewInput{
		TutorID: tutorID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if req.BookingID != nil {
		bookingID, _ := uuid.Parse(*req.BookingID)
		input.BookingID = &bookingID
	}

	review, err := svc.Reviews.Create(c.Context(), utils.CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetTutorReviews returns only APPROVED reviews; pending and rejected ones
// never leave moderation.
func GetTutorReviews(c *fiber.Ctx) error {
	tutorID, err := utils.ParseUUIDParam(c, "tutorId")
	if err != nil {
		return err
	}
	reviews, err := svc.Reviews.ListApprovedForTutor(c.Context(), tutorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

func GetMyReviews(c *fiber.Ctx) error {
	reviews, err := svc.Reviews.ListMine(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}
