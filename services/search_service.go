package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

const (
	SortByRating    = "rating"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"

	defaultPageSize = 10
	maxPageSize     = 100
)

// SearchFilter carries the learner's discovery criteria. Every field is
// optional; an absent field never excludes a tutor. City, district and
// subject are catalog names, not ids.
type SearchFilter struct {
	City     string
	District string
	Subject  string

	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64

	AvailabilityDay   string
	AvailabilityStart string
	AvailabilityEnd   string

	Page     int
	PageSize int
	SortBy   string
}

type TutorSummary struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Headline        *string   `json:"headline"`
	Bio             *string   `json:"bio"`
	City            string    `json:"city"`
	MonthlyRate     float64   `json:"monthly_rate"`
	RatingAvg       float64   `json:"rating_avg"`
	RatingCount     int       `json:"rating_count"`
	ExperienceYears int       `json:"experience_years"`
	IsVerified      bool      `json:"is_verified"`
}

// SearchService matches active tutors against a multi-criteria filter with a
// deterministic order and offset pagination.
type SearchService struct {
	store Store
}

func NewSearchService(store Store) *SearchService {
	return &SearchService{store: store}
}

// parsed filter with names resolved to catalog rows and times to minutes.
type searchCriteria struct {
	cityID     *uuid.UUID
	districtID *uuid.UUID
	subjectID  *uuid.UUID

	minPrice  *float64
	maxPrice  *float64
	minRating *float64

	day      *models.DayOfWeek
	startMin *int
	endMin   *int

	// a present catalog name that resolves to nothing matches no tutor
	unmatchable bool
}

func (s *SearchService) Search(ctx context.Context, filter SearchFilter) (*Page[TutorSummary], error) {
	page, size, err := normalizePaging(filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}
	sortBy := normalizeSortBy(filter.SortBy)

	crit, err := s.resolveCriteria(ctx, filter)
	if err != nil {
		return nil, err
	}
	empty := &Page[TutorSummary]{Items: []TutorSummary{}, Page: page, PageSize: size}
	if crit.unmatchable {
		return empty, nil
	}

	candidates, err := s.store.Tutors().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.TutorProfile, 0, len(candidates))
	for i := range candidates {
		ok, err := s.matches(ctx, &candidates[i], crit)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, candidates[i])
		}
	}

	sortTutors(matched, sortBy)

	total := int64(len(matched))
	offset := page * size
	if offset >= len(matched) {
		empty.Total = total
		return empty, nil
	}
	end := offset + size
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]TutorSummary, 0, end-offset)
	for i := offset; i < end; i++ {
		summary, err := s.summarize(ctx, &matched[i])
		if err != nil {
			return nil, err
		}
		items = append(items, summary)
	}

	return &Page[TutorSummary]{Items: items, Total: total, Page: page, PageSize: size}, nil
}

func (s *SearchService) resolveCriteria(ctx context.Context, filter SearchFilter) (*searchCriteria, error) {
	crit := &searchCriteria{
		minPrice:  filter.MinPrice,
		maxPrice:  filter.MaxPrice,
		minRating: filter.MinRating,
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, invalidInput("minPrice greater than maxPrice")
	}

	if day := strings.TrimSpace(filter.AvailabilityDay); day != "" {
		parsed, err := models.ParseDayOfWeek(day)
		if err != nil {
			return nil, invalidInput(err.Error())
		}
		crit.day = &parsed
	}
	hasStart := strings.TrimSpace(filter.AvailabilityStart) != ""
	hasEnd := strings.TrimSpace(filter.AvailabilityEnd) != ""
	if hasStart != hasEnd {
		return nil, invalidInput("availability window needs both start and end")
	}
	if hasStart {
		startMin, err := models.ParseClock(filter.AvailabilityStart)
		if err != nil {
			return nil, invalidInput(err.Error())
		}
		endMin, err := models.ParseClock(filter.AvailabilityEnd)
		if err != nil {
			return nil, invalidInput(err.Error())
		}
		if startMin >= endMin {
			return nil, invalidInput("availability start must be before end")
		}
		crit.startMin = &startMin
		crit.endMin = &endMin
	}

	catalog := s.store.Catalog()
	if name := strings.TrimSpace(filter.City); name != "" {
		city, err := catalog.GetCityByName(ctx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			crit.unmatchable = true
		case err != nil:
			return nil, err
		default:
			crit.cityID = &city.ID
		}
	}
	if name := strings.TrimSpace(filter.District); name != "" {
		district, err := catalog.GetDistrictByName(ctx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			crit.unmatchable = true
		case err != nil:
			return nil, err
		default:
			crit.districtID = &district.ID
		}
	}
	if name := strings.TrimSpace(filter.Subject); name != "" {
		subject, err := catalog.GetSubjectByName(ctx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			crit.unmatchable = true
		case err != nil:
			return nil, err
		default:
			crit.subjectID = &subject.ID
		}
	}

	return crit, nil
}

func (s *SearchService) matches(ctx context.Context, tutor *models.TutorProfile, crit *searchCriteria) (bool, error) {
	if crit.cityID != nil && (tutor.CityID == nil || *tutor.CityID != *crit.cityID) {
		return false, nil
	}
	if crit.minPrice != nil && tutor.MonthlyRate < *crit.minPrice {
		return false, nil
	}
	if crit.maxPrice != nil && tutor.MonthlyRate > *crit.maxPrice {
		return false, nil
	}
	if crit.minRating != nil && tutor.RatingAvg < *crit.minRating {
		return false, nil
	}

	if crit.subjectID != nil {
		memberships, err := s.store.Catalog().SubjectsForTutor(ctx, tutor.ID)
		if err != nil {
			return false, err
		}
		if !containsSubject(memberships, *crit.subjectID) {
			return false, nil
		}
	}
	if crit.districtID != nil {
		memberships, err := s.store.Catalog().DistrictsForTutor(ctx, tutor.ID)
		if err != nil {
			return false, err
		}
		if !containsDistrict(memberships, *crit.districtID) {
			return false, nil
		}
	}

	if crit.day != nil || crit.startMin != nil {
		slots, err := s.store.Slots().ListActiveByTutor(ctx, tutor.ID)
		if err != nil {
			return false, err
		}
		if !anySlotMatches(slots, crit) {
			return false, nil
		}
	}

	return true, nil
}

// anySlotMatches requires a single slot to satisfy the whole availability
// filter: matching day and full containment of the requested window.
func anySlotMatches(slots []models.AvailabilitySlot, crit *searchCriteria) bool {
	for i := range slots {
		slot := &slots[i]
		if crit.day != nil && slot.DayOfWeek != *crit.day {
			continue
		}
		if crit.startMin != nil && !slot.Covers(*crit.startMin, *crit.endMin) {
			continue
		}
		return true
	}
	return false
}

func containsSubject(memberships []models.TutorSubject, subjectID uuid.UUID) bool {
	for i := range memberships {
		if memberships[i].SubjectID == subjectID {
			return true
		}
	}
	return false
}

func containsDistrict(memberships []models.TutorDistrict, districtID uuid.UUID) bool {
	for i := range memberships {
		if memberships[i].DistrictID == districtID {
			return true
		}
	}
	return false
}

// sortTutors orders deterministically: the requested key first, tutor id
// ascending on ties.
func sortTutors(tutors []models.TutorProfile, sortBy string) {
	sort.Slice(tutors, func(i, j int) bool {
		a, b := &tutors[i], &tutors[j]
		switch sortBy {
		case SortByPriceAsc:
			if a.MonthlyRate != b.MonthlyRate {
				return a.MonthlyRate < b.MonthlyRate
			}
		case SortByPriceDesc:
			if a.MonthlyRate != b.MonthlyRate {
				return a.MonthlyRate > b.MonthlyRate
			}
		default: // rating
			if a.RatingAvg != b.RatingAvg {
				return a.RatingAvg > b.RatingAvg
			}
		}
		return a.ID.String() < b.ID.String()
	})
}

func (s *SearchService) summarize(ctx context.Context, tutor *models.TutorProfile) (TutorSummary, error) {
	summary := TutorSummary{
		ID:              tutor.ID,
		UserID:          tutor.UserID,
		Headline:        tutor.Headline,
		Bio:             tutor.Bio,
		MonthlyRate:     tutor.MonthlyRate,
		RatingAvg:       tutor.RatingAvg,
		RatingCount:     tutor.RatingCount,
		ExperienceYears: tutor.ExperienceYears,
		IsVerified:      tutor.IsVerified,
	}

	user, err := s.store.Users().Get(ctx, tutor.UserID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return summary, err
	}
	if user != nil {
		summary.FirstName = user.FirstName
		summary.LastName = user.LastName
	}

	if tutor.CityID != nil {
		city, err := s.store.Catalog().GetCity(ctx, *tutor.CityID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return summary, err
		}
		if city != nil {
			summary.City = city.Name
		}
	}

	return summary, nil
}

func normalizePaging(page, size int) (int, int, error) {
	if page < 0 {
		return 0, 0, invalidInput("page must be >= 0")
	}
	if size < 0 {
		return 0, 0, invalidInput("page size must be >= 1")
	}
	if size == 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size, nil
}

func normalizeSortBy(sortBy string) string {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case SortByPriceAsc:
		return SortByPriceAsc
	case SortByPriceDesc:
		return SortByPriceDesc
	default:
		return SortByRating
	}
}
