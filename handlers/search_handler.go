package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/services"
	"github.com/team13/tutorfind/utils"
)

// SearchTutors is the public discovery endpoint. All criteria arrive as query
// parameters; absent ones do not filter.
func SearchTutors(c *fiber.Ctx) error {
	filter := services.SearchFilter{
		City:              c.Query("city"),
		District:          c.Query("district"),
		Subject:           c.Query("subject"),
		AvailabilityDay:   c.Query("availability_day"),
		AvailabilityStart: c.Query("availability_start"),
		AvailabilityEnd:   c.Query("availability_end"),
		Page:              utils.QueryInt(c, "page", 0),
		PageSize:          utils.QueryInt(c, "page_size", 0),
		SortBy:            c.Query("sort_by"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid min_price"})
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid max_price"})
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid min_rating"})
		}
		filter.MinRating = &v
	}

	page, err := svc.Search.Search(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
