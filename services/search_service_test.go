package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team13/tutorfind/models"
)

func ptrFloat(v float64) *float64 { return &v }

func TestSearchNoFilterReturnsAllActive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addTutor("Aysel", "Mammadova")
	f.addTutor("Rashad", "Aliyev")
	_, inactive := f.addTutor("Leyla", "Hasanova")
	inactive.IsActive = false
	require.NoError(t, f.store.Tutors().Save(ctx, inactive))

	page, err := f.svc.Search.Search(ctx, SearchFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Items, 2)
}

func TestSearchFilterComposition(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	baku := f.addCity("Baku")
	yasamal := f.addDistrict(baku, "Yasamal")
	math := f.addSubject("Mathematics")

	// matches everything
	_, match := f.addTutor("Aysel", "Mammadova")
	match.CityID = &baku.ID
	match.MonthlyRate = 200
	require.NoError(t, f.store.Tutors().Save(ctx, match))
	require.NoError(t, f.store.Catalog().AddTutorSubject(ctx, &models.TutorSubject{TutorID: match.ID, SubjectID: math.ID}))
	require.NoError(t, f.store.Catalog().AddTutorDistrict(ctx, &models.TutorDistrict{TutorID: match.ID, DistrictID: yasamal.ID}))
	f.addSlot(match.ID, models.Monday, "09:00", "12:00")

	// right city, wrong subject
	_, wrongSubject := f.addTutor("Rashad", "Aliyev")
	wrongSubject.CityID = &baku.ID
	wrongSubject.MonthlyRate = 150
	require.NoError(t, f.store.Tutors().Save(ctx, wrongSubject))

	// too expensive
	_, expensive := f.addTutor("Leyla", "Hasanova")
	expensive.CityID = &baku.ID
	expensive.MonthlyRate = 900
	require.NoError(t, f.store.Tutors().Save(ctx, expensive))
	require.NoError(t, f.store.Catalog().AddTutorSubject(ctx, &models.TutorSubject{TutorID: expensive.ID, SubjectID: math.ID}))

	page, err := f.svc.Search.Search(ctx, SearchFilter{
		City:     "Baku",
		District: "Yasamal",
		Subject:  "Mathematics",
		MaxPrice: ptrFloat(500),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, match.ID, page.Items[0].ID)
	assert.Equal(t, "Aysel", page.Items[0].FirstName)
	assert.Equal(t, "Baku", page.Items[0].City)
}

func TestSearchUnknownCatalogNameMatchesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addCity("Baku")
	f.addTutor("Aysel", "Mammadova")

	page, err := f.svc.Search.Search(ctx, SearchFilter{City: "Atlantis"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestSearchAvailabilityContainment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, tutor := f.addTutor("Aysel", "Mammadova")
	f.addSlot(tutor.ID, models.Monday, "09:00", "12:00")

	// fully inside the slot
	page, err := f.svc.Search.Search(ctx, SearchFilter{
		AvailabilityDay:   "MONDAY",
		AvailabilityStart: "10:00",
		AvailabilityEnd:   "11:00",
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	// starts before the slot opens: partial overlap is not enough
	page, err = f.svc.Search.Search(ctx, SearchFilter{
		AvailabilityDay:   "MONDAY",
		AvailabilityStart: "08:00",
		AvailabilityEnd:   "11:00",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	// wrong day
	page, err = f.svc.Search.Search(ctx, SearchFilter{
		AvailabilityDay:   "TUESDAY",
		AvailabilityStart: "10:00",
		AvailabilityEnd:   "11:00",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestSearchAvailabilityWindowNeedsBothBounds(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Search.Search(context.Background(), SearchFilter{AvailabilityStart: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchInvalidPriceRange(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Search.Search(context.Background(), SearchFilter{
		MinPrice: ptrFloat(300),
		MaxPrice: ptrFloat(100),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchSorting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, cheap := f.addTutor("Aysel", "Mammadova")
	cheap.MonthlyRate = 100
	cheap.RatingAvg = 3.0
	require.NoError(t, f.store.Tutors().Save(ctx, cheap))

	_, pricey := f.addTutor("Rashad", "Aliyev")
	pricey.MonthlyRate = 400
	pricey.RatingAvg = 4.8
	require.NoError(t, f.store.Tutors().Save(ctx, pricey))

	page, err := f.svc.Search.Search(ctx, SearchFilter{SortBy: SortByPriceAsc})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, cheap.ID, page.Items[0].ID)

	page, err = f.svc.Search.Search(ctx, SearchFilter{SortBy: SortByPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, pricey.ID, page.Items[0].ID)

	// unknown sort key falls back to rating
	page, err = f.svc.Search.Search(ctx, SearchFilter{SortBy: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, pricey.ID, page.Items[0].ID)
}

func TestSearchTieBreakIsDeterministic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, a := f.addTutor("Aysel", "Mammadova")
	_, b := f.addTutor("Rashad", "Aliyev")

	first, err := f.svc.Search.Search(ctx, SearchFilter{})
	require.NoError(t, err)
	require.Len(t, first.Items, 2)

	for i := 0; i < 5; i++ {
		again, err := f.svc.Search.Search(ctx, SearchFilter{})
		require.NoError(t, err)
		assert.Equal(t, first.Items[0].ID, again.Items[0].ID)
	}

	// identical keys: lower id string wins
	want := a.ID
	if b.ID.String() < a.ID.String() {
		want = b.ID
	}
	assert.Equal(t, want, first.Items[0].ID)
}

func TestSearchPagination(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		f.addTutor("Tutor", string(rune('A'+i)))
	}

	page, err := f.svc.Search.Search(ctx, SearchFilter{Page: 0, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Len(t, page.Items, 2)

	last, err := f.svc.Search.Search(ctx, SearchFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, last.Total)
	assert.Len(t, last.Items, 1)

	beyond, err := f.svc.Search.Search(ctx, SearchFilter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, beyond.Total)
	assert.Empty(t, beyond.Items)

	_, err = f.svc.Search.Search(ctx, SearchFilter{Page: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchMinRating(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, low := f.addTutor("Aysel", "Mammadova")
	low.RatingAvg = 3.2
	require.NoError(t, f.store.Tutors().Save(ctx, low))

	_, high := f.addTutor("Rashad", "Aliyev")
	high.RatingAvg = 4.6
	require.NoError(t, f.store.Tutors().Save(ctx, high))

	page, err := f.svc.Search.Search(ctx, SearchFilter{MinRating: ptrFloat(4.0)})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, high.ID, page.Items[0].ID)
}
