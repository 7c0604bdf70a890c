package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

type CreateFeedbackRequest struct {
	LearnerID           string     `json:"learner_id" validate:"required,uuid"`
	BookingID           *string    `json:"booking_id" validate:"omitempty,uuid"`
	SubjectID           *string    `json:"subject_id" validate:"omitempty,uuid"`
	SessionDate         *time.Time `json:"session_date"`
	FeedbackText        string     `json:"feedback_text" validate:"required,min=3"`
	Strengths           *string    `json:"strengths"`
	AreasForImprovement *string    `json:"areas_for_improvement"`
}

// SubmitFeedback lets a tutor write private session feedback for a learner.
func SubmitFeedback(c *fiber.Ctx) error {
	var req CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	learnerID, _ := uuid.Parse(req.LearnerID)
	input := services.CreateFeedbackInput{
		LearnerID:           learnerID,
		SessionDate:         req.SessionDate,
		FeedbackText:        req.FeedbackText,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
	}
	if req.BookingID != nil {
		bookingID, _ := uuid.Parse(*req.BookingID)
		input.BookingID = &bookingID
	}
	if req.SubjectID != nil {
		subjectID, _ := uuid.Parse(*req.SubjectID)
		input.SubjectID = &subjectID
	}

	feedback, err := svc.Feedback.Create(c.Context(), utils.CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func GetFeedback(c *fiber.Ctx) error {
	feedbackID, err := utils.ParseUUIDParam(c, "feedbackId")
	if err != nil {
		return err
	}
	feedback, err := svc.Feedback.Get(c.Context(), utils.CurrentUserID(c), feedbackID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feedback)
}

func GetMyReceivedFeedback(c *fiber.Ctx) error {
	feedback, err := svc.Feedback.ListReceived(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feedback)
}

func GetMyGivenFeedback(c *fiber.Ctx) error {
	feedback, err := svc.Feedback.ListGiven(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feedback)
}
