package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/utils"
)

func ListCities(c *fiber.Ctx) error {
	cities, err := svc.Catalog.ListCities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cities)
}

func ListDistricts(c *fiber.Ctx) error {
	cityID, err := utils.ParseUUIDParam(c, "cityId")
	if err != nil {
		return err
	}
	districts, err := svc.Catalog.ListDistricts(c.Context(), cityID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(districts)
}

func ListSubjects(c *fiber.Ctx) error {
	subjects, err := svc.Catalog.ListSubjects(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subjects)
}
