// Package client holds the booking client model: an HTTP client for the
// booking API and the pure list controller that derives the visible page
// from UI state.
package client

import (
	"sort"
	"strings"

	"washbay/models"
)

// Sort keys supported by the list view.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceHigh = "price-high"
	SortPriceLow  = "price-low"
	SortStatus    = "status"
	SortService   = "service"
)

// SortOption pairs a sort key with the label shown in the sort dropdown.
type SortOption struct {
	Key   string
	Label string
}

// SortKeys lists the sort options in display order.
var SortKeys = []SortOption{
	{SortNewest, "Newest First"},
	{SortOldest, "Oldest First"},
	{SortPriceHigh, "Price: High to Low"},
	{SortPriceLow, "Price: Low to High"},
	{SortStatus, "Status"},
	{SortService, "Service Type"},
}

// FilterAll matches every booking for the status and service filters.
const FilterAll = "All"

// DefaultPageSize is the number of cards per page on the list screen.
const DefaultPageSize = 8

// ListControls is the UI-only state the list view derives from.
type ListControls struct {
	SearchTerm    string
	StatusFilter  string
	ServiceFilter string
	SortKey       string
	Page          int // 1-based
	PageSize      int
}

// NewListControls returns controls in their initial state.
func NewListControls() ListControls {
	return ListControls{
		StatusFilter:  FilterAll,
		ServiceFilter: FilterAll,
		SortKey:       SortNewest,
		Page:          1,
		PageSize:      DefaultPageSize,
	}
}

// ListView is the derived, renderable subset of the booking list.
type ListView struct {
	Items      []models.Booking // the visible page
	Total      int              // filtered count
	TotalPages int
	Page       int
	StartItem  int // 1-based index of the first visible item, 0 when empty
	EndItem    int
}

// Matches reports whether a booking passes all three filter predicates.
// The search term matches case-insensitively against the customer name or
// the "make model" label; status and service must match exactly unless All.
func (c ListControls) Matches(b *models.Booking) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		name := strings.ToLower(b.CustomerName)
		car := strings.ToLower(b.CarLabel())
		if !strings.Contains(name, term) && !strings.Contains(car, term) {
			return false
		}
	}
	if c.StatusFilter != "" && c.StatusFilter != FilterAll && b.Status != c.StatusFilter {
		return false
	}
	if c.ServiceFilter != "" && c.ServiceFilter != FilterAll && b.ServiceType != c.ServiceFilter {
		return false
	}
	return true
}

// Filter returns the bookings passing all predicates, preserving order.
func (c ListControls) Filter(list []models.Booking) []models.Booking {
	filtered := make([]models.Booking, 0, len(list))
	for i := range list {
		if c.Matches(&list[i]) {
			filtered = append(filtered, list[i])
		}
	}
	return filtered
}

// Sort orders the filtered list by the active sort key. The sort is stable:
// equal keys keep their relative order.
func (c ListControls) Sort(list []models.Booking) {
	var less func(a, b *models.Booking) bool
	switch c.SortKey {
	case SortOldest:
		less = func(a, b *models.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortPriceHigh:
		less = func(a, b *models.Booking) bool { return a.PriceValue() > b.PriceValue() }
	case SortPriceLow:
		less = func(a, b *models.Booking) bool { return a.PriceValue() < b.PriceValue() }
	case SortStatus:
		less = func(a, b *models.Booking) bool {
			return models.StatusRank(a.Status) < models.StatusRank(b.Status)
		}
	case SortService:
		less = func(a, b *models.Booking) bool { return a.ServiceType < b.ServiceType }
	default: // SortNewest
		less = func(a, b *models.Booking) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(&list[i], &list[j]) })
}

// Apply derives the visible page from the full booking list without mutating
// it: filter, then sort, then paginate.
func Apply(list []models.Booking, c ListControls) ListView {
	filtered := c.Filter(list)
	c.Sort(filtered)

	total := len(filtered)
	size := c.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := c.Page
	if page < 1 {
		page = 1
	}
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	view := ListView{
		Items:      filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
	if len(view.Items) > 0 {
		view.StartItem = start + 1
		view.EndItem = end
	}
	return view
}

// TotalPages returns how many pages the given item count spans.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (total + pageSize - 1) / pageSize
}

// SetSearch updates the search term and resets to the first page.
func (c *ListControls) SetSearch(term string) {
	c.SearchTerm = term
	c.Page = 1
}

// SetStatusFilter updates the status filter and resets to the first page.
func (c *ListControls) SetStatusFilter(status string) {
	c.StatusFilter = status
	c.Page = 1
}

// SetServiceFilter updates the service filter and resets to the first page.
func (c *ListControls) SetServiceFilter(service string) {
	c.ServiceFilter = service
	c.Page = 1
}

// SetSortKey updates the sort key and resets to the first page.
func (c *ListControls) SetSortKey(key string) {
	c.SortKey = key
	c.Page = 1
}

// SetPageSize updates the page size and resets to the first page.
func (c *ListControls) SetPageSize(size int) {
	c.PageSize = size
	c.Page = 1
}

// ClampPage pulls the page number down to the last non-empty page, for use
// after a deletion empties the current page. An empty list clamps to 1.
func (c *ListControls) ClampPage(filteredTotal int) {
	last := TotalPages(filteredTotal, c.PageSize)
	if last < 1 {
		last = 1
	}
	if c.Page > last {
		c.Page = last
	}
	if c.Page < 1 {
		c.Page = 1
	}
}

// Stats summarizes the unfiltered booking list for the dashboard cards.
type Stats struct {
	Total        int
	Pending      int
	Confirmed    int
	Completed    int
	Cancelled    int
	TotalRevenue float64 // sum of price over Completed bookings
}

// Summarize computes statistics over the full list, independent of any
// filter, sort or page state.
func Summarize(list []models.Booking) Stats {
	var s Stats
	s.Total = len(list)
	for i := range list {
		switch list[i].Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusConfirmed:
			s.Confirmed++
		case models.StatusCompleted:
			s.Completed++
			s.TotalRevenue += list[i].PriceValue()
		case models.StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
