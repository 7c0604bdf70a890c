package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

// GetTutorDetail is the public profile page.
func GetTutorDetail(c *fiber.Ctx) error {
	tutorID, err := utils.ParseUUIDParam(c, "tutorId")
	if err != nil {
		return err
	}
	detail, err := svc.Tutors.GetDetail(c.Context(), tutorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

func GetMyTutorProfile(c *fiber.Ctx) error {
	profile, err := svc.Tutors.GetMine(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

type UpdateTutorProfileRequest struct {
	CityID          *string  `json:"city_id" validate:"omitempty,uuid"`
	Headline        *string  `json:"headline" validate:"omitempty,max=255"`
	Bio             *string  `json:"bio"`
	Qualifications  *string  `json:"qualifications"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,min=0"`
	MonthlyRate     *float64 `json:"monthly_rate" validate:"omitempty,min=0"`
}

func UpdateMyTutorProfile(c *fiber.Ctx) error {
	var req UpdateTutorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input := services.UpdateProfileInput{
		Headline:        req.Headline,
		Bio:             req.Bio,
		Qualifications:  req.Qualifications,
		ExperienceYears: req.ExperienceYears,
		MonthlyRate:     req.MonthlyRate,
	}
	if req.CityID != nil {
		cityID, err := uuid.Parse(*req.CityID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid city_id"})
		}
		input.CityID = &cityID
	}

	profile, err := svc.Tutors.UpdateMine(c.Context(), utils.CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

type AddSlotRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func AddAvailabilitySlot(c *fiber.Ctx) error {
	var req AddSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slot, err := svc.Availability.AddSlot(c.Context(), utils.CurrentUserID(c), req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func RemoveAvailabilitySlot(c *fiber.Ctx) error {
	slotID, err := utils.ParseUUIDParam(c, "slotId")
	if err != nil {
		return err
	}
	if err := svc.Availability.RemoveSlot(c.Context(), utils.CurrentUserID(c), slotID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Slot removed"})
}

func GetMyAvailability(c *fiber.Ctx) error {
	slots, err := svc.Availability.ListMine(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slots)
}

// GetTutorAvailability is the public view: active slots only.
func GetTutorAvailability(c *fiber.Ctx) error {
	tutorID, err := utils.ParseUUIDParam(c, "tutorId")
	if err != nil {
		return err
	}
	slots, err := svc.Availability.ListForTutor(c.Context(), tutorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slots)
}

type AddSubjectRequest struct {
	SubjectID   string  `json:"subject_id" validate:"required,uuid"`
	Proficiency *string `json:"proficiency"`
}

func AddMySubject(c *fiber.Ctx) error {
	var req AddSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	subjectID, _ := uuid.Parse(req.SubjectID)

	if err := svc.Availability.AddSubject(c.Context(), utils.CurrentUserID(c), subjectID, req.Proficiency); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subject added"})
}

func RemoveMySubject(c *fiber.Ctx) error {
	subjectID, err := utils.ParseUUIDParam(c, "subjectId")
	if err != nil {
		return err
	}
	if err := svc.Availability.RemoveSubject(c.Context(), utils.CurrentUserID(c), subjectID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject removed"})
}

type AddDistrictRequest struct {
	DistrictID string `json:"district_id" validate:"required,uuid"`
}

func AddMyDistrict(c *fiber.Ctx) error {
	var req AddDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	districtID, _ := uuid.Parse(req.DistrictID)

	if err := svc.Availability.AddDistrict(c.Context(), utils.CurrentUserID(c), districtID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "District added"})
}

func RemoveMyDistrict(c *fiber.Ctx) error {
	districtID, err := utils.ParseUUIDParam(c, "districtId")
	if err != nil {
		return err
	}
	if err := svc.Availability.RemoveDistrict(c.Context(), utils.CurrentUserID(c), districtID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "District removed"})
}
