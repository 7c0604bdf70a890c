package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

type CreateBookingRequest struct {
	TutorID       string   `json:"tutor_id" validate:"required,uuid"`
	SubjectID     *string  `json:"subject_id" validate:"omitempty,uuid"`
	Mode          string   `json:"mode" validate:"omitempty,oneof=ONLINE IN_PERSON online in_person"`
	Slot          string   `json:"slot" validate:"required"`
	Note          string   `json:"note"`
	ProposedPrice *float64 `json:"proposed_price" validate:"omitempty,min=0"`
}

func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	input := services.CreateBookingInput{
		TutorID:       tutorID,
		Mode:          req.Mode,
		Slot:          req.Slot,
		Note:          req.Note,
		ProposedPrice: req.ProposedPrice,
	}
	if req.SubjectID != nil {
		subjectID, err := uuid.Parse(*req.SubjectID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject_id"})
		}
		input.SubjectID = &subjectID
	}

	booking, err := svc.Bookings.Create(c.Context(), utils.CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

type RespondBookingRequest struct {
	Accept   bool    `json:"accept"`
	Response *string `json:"response"`
}

// RespondBooking is the tutor's one-shot accept/decline.
func RespondBooking(c *fiber.Ctx) error {
	bookingID, err := utils.ParseUUIDParam(c, "bookingId")
	if err != nil {
		return err
	}

	var req RespondBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	booking, err := svc.Bookings.Respond(c.Context(), utils.CurrentUserID(c), bookingID, req.Accept, req.Response)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID, err := utils.ParseUUIDParam(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := svc.Bookings.Get(c.Context(), bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func GetMySentBookings(c *fiber.Ctx) error {
	bookings, err := svc.Bookings.ListSent(c.Context(), utils.CurrentUserID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}

func GetMyReceivedBookings(c *fiber.Ctx) error {
	bookings, err := svc.Bookings.ListReceived(c.Context(), utils.CurrentUserID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}
