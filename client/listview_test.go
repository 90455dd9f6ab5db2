package client

import (
	"testing"
	"time"

	"washbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func sampleBookings() []models.Booking {
	base := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	return []models.Booking{
		{BookingID: 1, CustomerName: "John Doe", CarDetails: models.CarDetails{Make: "Toyota", Model: "Corolla", Year: 2020}, ServiceType: "Deluxe Wash", Price: ptrFloat(25), Status: models.StatusPending, CreatedAt: base},
		{BookingID: 2, CustomerName: "Jane Smith", CarDetails: models.CarDetails{Make: "Honda", Model: "Civic", Year: 2019}, ServiceType: "Full Detail", Price: ptrFloat(75), Status: models.StatusConfirmed, CreatedAt: base.Add(time.Hour)},
		{BookingID: 3, CustomerName: "Mike Johnson", CarDetails: models.CarDetails{Make: "Ford", Model: "Explorer", Year: 2021}, ServiceType: "Basic Wash", Price: ptrFloat(15), Status: models.StatusCompleted, CreatedAt: base.Add(2 * time.Hour)},
		{BookingID: 4, CustomerName: "Sarah Wilson", CarDetails: models.CarDetails{Make: "BMW", Model: "X5", Year: 2022}, ServiceType: "Ceramic Coating", Price: ptrFloat(120), Status: models.StatusPending, CreatedAt: base.Add(3 * time.Hour)},
		{BookingID: 5, CustomerName: "Asha Rao", CarDetails: models.CarDetails{Make: "Toyota", Model: "Camry", Year: 2021}, ServiceType: "Basic Wash", Price: ptrFloat(40), Status: models.StatusCompleted, CreatedAt: base.Add(4 * time.Hour)},
		{BookingID: 6, CustomerName: "Carlos Mendez", CarDetails: models.CarDetails{Make: "Kia", Model: "Sportage", Year: 2018}, ServiceType: "Exterior Wax", Status: models.StatusCancelled, CreatedAt: base.Add(5 * time.Hour)},
	}
}

func TestFilterIdentityWhenUnset(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()

	filtered := controls.Filter(list)
	assert.Equal(t, list, filtered)
}

func TestFilterSearchMatchesNameOrCar(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()

	// Case-insensitive customer name match.
	controls.SetSearch("jane")
	filtered := controls.Filter(list)
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].BookingID)

	// Match against the "make model" concatenation, across the space.
	controls.SetSearch("toyota co")
	filtered = controls.Filter(list)
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].BookingID)

	// No match.
	controls.SetSearch("tesla")
	assert.Empty(t, controls.Filter(list))
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()
	controls.SetSearch("toyota")
	controls.SetStatusFilter(models.StatusCompleted)
	controls.SetServiceFilter("Basic Wash")

	filtered := controls.Filter(list)
	require.Len(t, filtered, 1)
	assert.Equal(t, 5, filtered[0].BookingID)

	// Every element satisfies all three predicates and is drawn from the input.
	for i := range filtered {
		assert.True(t, controls.Matches(&filtered[i]))
		assert.Contains(t, list, filtered[i])
	}
}

func TestStatusFilterIsCaseSensitive(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()
	controls.SetStatusFilter("pending")

	assert.Empty(t, controls.Filter(list))
}

func TestSortKeys(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()

	ids := func(v []models.Booking) []int {
		out := make([]int, len(v))
		for i := range v {
			out[i] = v[i].BookingID
		}
		return out
	}

	controls.SetSortKey(SortNewest)
	view := Apply(list, controls)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, ids(view.Items))

	controls.SetSortKey(SortOldest)
	view = Apply(list, controls)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(view.Items))

	controls.SetSortKey(SortPriceHigh)
	view = Apply(list, controls)
	assert.Equal(t, []int{4, 2, 5, 1, 3, 6}, ids(view.Items))

	controls.SetSortKey(SortPriceLow)
	view = Apply(list, controls)
	assert.Equal(t, []int{6, 3, 1, 5, 2, 4}, ids(view.Items))

	// Status priority: Pending < Confirmed < Completed < Cancelled, stable
	// within equal ranks.
	controls.SetSortKey(SortStatus)
	view = Apply(list, controls)
	assert.Equal(t, []int{1, 4, 2, 3, 5, 6}, ids(view.Items))

	controls.SetSortKey(SortService)
	view = Apply(list, controls)
	assert.Equal(t, []int{3, 5, 4, 1, 6, 2}, ids(view.Items))
}

func TestUnrecognizedStatusSortsLast(t *testing.T) {
	list := sampleBookings()
	list[0].Status = "Archived"

	controls := NewListControls()
	controls.SetSortKey(SortStatus)
	view := Apply(list, controls)

	assert.Equal(t, "Archived", view.Items[len(view.Items)-1].Status)
}

func TestPaginationReconstructsList(t *testing.T) {
	list := sampleBookings()
	controls := NewListControls()
	controls.SetSortKey(SortOldest)
	controls.SetPageSize(2)

	sorted := controls.Filter(list)
	controls.Sort(sorted)

	var reconstructed []models.Booking
	pages := TotalPages(len(sorted), controls.PageSize)
	for p := 1; p <= pages; p++ {
		controls.Page = p
		view := Apply(list, controls)
		require.NotEmpty(t, view.Items)
		require.LessOrEqual(t, len(view.Items), controls.PageSize)
		reconstructed = append(reconstructed, view.Items...)
	}
	assert.Equal(t, sorted, reconstructed)
}

func TestPaginationNineItemsPageSizeEight(t *testing.T) {
	base := time.Now()
	var list []models.Booking
	for i := 1; i <= 9; i++ {
		list = append(list, models.Booking{BookingID: i, Status: models.StatusPending, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	controls := NewListControls()
	controls.SetSortKey(SortOldest)
	controls.SetPageSize(8)

	controls.Page = 2
	view := Apply(list, controls)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 9, view.Items[0].BookingID)
	assert.Equal(t, 9, view.StartItem)
	assert.Equal(t, 9, view.EndItem)

	controls.Page = 3
	view = Apply(list, controls)
	assert.Empty(t, view.Items)
}

func TestControlChangesResetPage(t *testing.T) {
	controls := NewListControls()
	controls.Page = 4

	controls.SetSearch("a")
	assert.Equal(t, 1, controls.Page)

	controls.Page = 4
	controls.SetStatusFilter(models.StatusPending)
	assert.Equal(t, 1, controls.Page)

	controls.Page = 4
	controls.SetServiceFilter("Basic Wash")
	assert.Equal(t, 1, controls.Page)

	controls.Page = 4
	controls.SetSortKey(SortPriceLow)
	assert.Equal(t, 1, controls.Page)

	controls.Page = 4
	controls.SetPageSize(20)
	assert.Equal(t, 1, controls.Page)
}

func TestClampPageAfterDeletion(t *testing.T) {
	controls := NewListControls()
	controls.PageSize = 8
	controls.Page = 2

	// Two pages (9 items) shrink to one (8 items): page 2 clamps to 1.
	controls.ClampPage(8)
	assert.Equal(t, 1, controls.Page)

	// Deleting the last booking keeps the page at 1.
	controls.ClampPage(0)
	assert.Equal(t, 1, controls.Page)

	// A still-valid page is untouched.
	controls.Page = 2
	controls.ClampPage(12)
	assert.Equal(t, 2, controls.Page)
}

func TestSummarize(t *testing.T) {
	list := sampleBookings()
	stats := Summarize(list)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	// Revenue counts only Completed bookings: 15 + 40.
	assert.Equal(t, 55.0, stats.TotalRevenue)
}

func TestSummarizeIgnoresViewState(t *testing.T) {
	list := sampleBookings()

	controls := NewListControls()
	controls.SetStatusFilter(models.StatusPending)
	controls.SetPageSize(1)
	controls.Page = 2
	_ = Apply(list, controls)

	// Stats are computed over the unfiltered list, not the derived view.
	assert.Equal(t, Summarize(list), Summarize(list))
	assert.Equal(t, 55.0, Summarize(list).TotalRevenue)
}
