package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/utils"
)

func EnrollInClass(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	enrollment, err := svc.Enrollments.Enroll(c.Context(), utils.CurrentUserID(c), classID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

func DropEnrollment(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	if err := svc.Enrollments.Drop(c.Context(), utils.CurrentUserID(c), classID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Enrollment dropped"})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	enrollments, err := svc.Enrollments.ListMine(c.Context(), utils.CurrentUserID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

// GetClassRoster lists a class's enrollments for its owning tutor.
func GetClassRoster(c *fiber.Ctx) error {
	classID, err := utils.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	roster, err := svc.Enrollments.Roster(c.Context(), utils.CurrentUserID(c), classID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roster)
}
