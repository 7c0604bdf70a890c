package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

type CreateClassRequest struct {
	SubjectID   *string `json:"subject_id" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Description string  `json:"description"`
	ClassType   string  `json:"class_type" validate:"omitempty,oneof=INDIVIDUAL GROUP individual group"`

	MaxStudents     int      `json:"max_students" validate:"required,min=1"`
	PricePerSession *float64 `json:"price_per_session" validate:"omitempty,min=0"`
	TotalSessions   int      `json:"total_sessions" validate:"omitempty,min=0"`
	DurationMinutes int      `json:"duration_minutes" validate:"omitempty,min=0"`

	ScheduleDay  string     `json:"schedule_day"`
	ScheduleTime *string    `json:"schedule_time"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`

	AvailabilitySlotID *string `json:"availability_slot_id" validate:"omitempty,uuid"`
}

func CreateClass(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input := services.CreateClassInput{
		Name:            req.Name,
		Description:     req.Description,
		ClassType:       req.ClassType,
		MaxStudents:     req.MaxStudents,
		PricePerSession: req.PricePerSession,
		TotalSessions:   req.TotalSessions,
		DurationMinutes: req.DurationMinutes,
		ScheduleDay:     req.ScheduleDay,
		ScheduleTime:    req.ScheduleTime,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}
	if req.SubjectID != nil {
		subjectID, _ := uuid.Parse(*req.SubjectID)
		input.SubjectID = &subjectID
	}
	if req.AvailabilitySlotID != nil {
		slotID, _ := uuid.Parse(*req.AvailabilitySlotID)
		input.AvailabilitySlotID = &slotID
	}

	class, err := svc.Classes.Create(c.Context(), utils.CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

type UpdateClassRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=3,max=255"`
	Description     *string    `json:"description"`
	MaxStudents     *int       `json:"max_students" validate:"omitempty,min=1"`
	PricePerSession *float64   `json:"price_per_session" validate:"omitempty,min=0"`
	TotalSessions   *int       `json:"total_sessions" validate:"omitempty,min=0"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=0"`
	ScheduleTime    *string    `json:"schedule_time"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}

func UpdateClass(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class, err := svc.Classes.Update(c.Context(), utils.CurrentUserID(c), classID, services.UpdateClassInput{
		Name:            req.Name,
		Description:     req.Description,
		MaxStudents:     req.MaxStudents,
		PricePerSession: req.PricePerSession,
		TotalSessions:   req.TotalSessions,
		DurationMinutes: req.DurationMinutes,
		ScheduleTime:    req.ScheduleTime,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(class)
}

func DeleteClass(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	if err := svc.Classes.Delete(c.Context(), utils.CurrentUserID(c), classID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Class deleted"})
}

func CancelClass(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	class, err := svc.Classes.Cancel(c.Context(), utils.CurrentUserID(c), classID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(class)
}

func GetClass(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	class, err := svc.Classes.Get(c.Context(), classID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(class)
}

func ListOpenClasses(c *fiber.Ctx) error {
	classes, err := svc.Classes.ListOpen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(classes)
}

func GetMyClasses(c *fiber.Ctx) error {
	classes, err := svc.Classes.ListMine(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(classes)
}
