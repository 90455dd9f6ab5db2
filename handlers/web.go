package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"washbay/client"
	"washbay/forms"
	"washbay/models"
	"washbay/services/booking"
	"washbay/services/invoice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebHandler serves the server-rendered booking UI.
type WebHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewWebHandler creates a WebHandler with the given service.
func NewWebHandler(svc booking.BookingService, logger *zap.Logger) *WebHandler {
	return &WebHandler{Service: svc, Logger: logger}
}

// controlsFromQuery reads the list view state from query parameters.
func controlsFromQuery(c *gin.Context) client.ListControls {
	controls := client.NewListControls()
	controls.SearchTerm = c.Query("search")
	if v := c.Query("status"); v != "" {
		controls.StatusFilter = v
	}
	if v := c.Query("service"); v != "" {
		controls.ServiceFilter = v
	}
	if v := c.Query("sort"); v != "" {
		controls.SortKey = v
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		controls.Page = page
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil && size > 0 {
		controls.PageSize = size
	}
	return controls
}

// ListPage handles GET /: stats, filters and the current page of bookings.
func (h *WebHandler) ListPage(c *gin.Context) {
	bookings, err := h.Service.GetAllBookings()
	if err != nil {
		h.Logger.Error("Failed to load bookings for list page", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "list.html", gin.H{
			"Error": "Failed to load bookings. Please try again.",
		})
		return
	}

	controls := controlsFromQuery(c)
	// A stale page number (e.g. after a deletion) is clamped to the last
	// non-empty page rather than rendered blank.
	controls.ClampPage(len(controls.Filter(bookings)))
	view := client.Apply(bookings, controls)

	pages := make([]int, view.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"View":         view,
		"Controls":     controls,
		"Stats":        client.Summarize(bookings),
		"Statuses":     models.Statuses,
		"ServiceTypes": models.ServiceTypes,
		"SortKeys":     client.SortKeys,
		"Pages":        pages,
		"PageBase":     pageBase(controls),
		"Error":        c.Query("err"),
	})
}

// DetailPage handles GET /booking/:id.
func (h *WebHandler) DetailPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "detail.html", gin.H{"NotFound": true})
		return
	}
	b, err := h.Service.GetBookingByID(id)
	if err != nil {
		if booking.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "detail.html", gin.H{"NotFound": true})
			return
		}
		h.Logger.Error("Failed to load booking detail", zap.Int("bookingId", id), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "detail.html", gin.H{
			"Error": "Failed to load booking details. Please try again.",
		})
		return
	}
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Booking":      b,
		"NextStatuses": models.NextStatuses(b.Status),
		"Error":        c.Query("err"),
	})
}

// formPageData assembles the catalog lists every form render needs.
func formPageData(form forms.BookingForm, editID int, errs forms.Errors) gin.H {
	return gin.H{
		"Form":         form,
		"EditID":       editID,
		"Errors":       errs.List,
		"FieldErrors":  errs.ByField,
		"ServiceTypes": models.ServiceTypes,
		"AddOns":       models.AddOns,
		"TimeSlots":    models.TimeSlots,
		"CarTypes":     models.CarTypes,
		"Statuses":     models.Statuses,
	}
}

// NewBookingPage handles GET /add-booking.
func (h *WebHandler) NewBookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", formPageData(forms.BookingForm{Status: models.StatusPending}, 0, forms.Errors{}))
}

// EditBookingPage handles GET /edit-booking/:id, pre-populated from the record.
func (h *WebHandler) EditBookingPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	b, err := h.Service.GetBookingByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/?err="+url.QueryEscape("Booking not found"))
		return
	}
	c.HTML(http.StatusOK, "form.html", formPageData(forms.FromBooking(b), id, forms.Errors{}))
}

// SubmitBooking handles POST /add-booking and POST /edit-booking/:id.
// Validation failures re-render the form with the consolidated error list
// and the submitted values; a successful edit navigates to the detail view,
// a successful create to the list.
func (h *WebHandler) SubmitBooking(c *gin.Context) {
	var form forms.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.Warn("Malformed booking form", zap.Error(err))
		c.HTML(http.StatusBadRequest, "form.html", formPageData(form, 0, forms.Errors{List: []string{"Invalid form submission"}}))
		return
	}

	editID := 0
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
		editID = id
	}

	if errs := forms.Validate(&form); errs.Any() {
		c.HTML(http.StatusOK, "form.html", formPageData(form, editID, errs))
		return
	}

	b := form.ToBooking()
	if editID == 0 {
		if _, err := h.Service.CreateBooking(&b); err != nil {
			h.Logger.Error("Failed to create booking", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "form.html",
				formPageData(form, 0, forms.Errors{List: []string{"Failed to create booking. Please try again."}}))
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	if _, err := h.Service.UpdateBooking(editID, bookingFields(&b)); err != nil {
		h.Logger.Error("Failed to update booking", zap.Int("bookingId", editID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "form.html",
			formPageData(form, editID, forms.Errors{List: []string{"Failed to update booking. Please try again."}}))
		return
	}
	c.Redirect(http.StatusFound, "/booking/"+strconv.Itoa(editID))
}

// ChangeStatus handles POST /booking/:id/status. The form only offers the
// fixed forward transitions; the store stays permissive.
func (h *WebHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	status := c.PostForm("status")
	if !models.ValidStatus(status) {
		c.Redirect(http.StatusFound, "/booking/"+strconv.Itoa(id)+"?err="+url.QueryEscape("Unknown status"))
		return
	}
	if _, err := h.Service.UpdateBooking(id, map[string]interface{}{"status": status}); err != nil {
		h.Logger.Error("Failed to update status", zap.Int("bookingId", id), zap.Error(err))
		c.Redirect(http.StatusFound, "/booking/"+strconv.Itoa(id)+"?err="+url.QueryEscape("Failed to update booking status. Please try again."))
		return
	}
	c.Redirect(http.StatusFound, "/booking/"+strconv.Itoa(id))
}

// DeleteBooking handles POST /booking/:id/delete. A failed deletion keeps the
// record listed and surfaces an inline banner.
func (h *WebHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err := h.Service.DeleteBooking(id); err != nil {
		h.Logger.Error("Failed to delete booking", zap.Int("bookingId", id), zap.Error(err))
		c.Redirect(http.StatusFound, "/?err="+url.QueryEscape("Failed to delete booking. Please try again."))
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// InvoicePage handles GET /booking/:id/invoice, a printable document.
func (h *WebHandler) InvoicePage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	b, err := h.Service.GetBookingByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/?err="+url.QueryEscape("Booking not found"))
		return
	}
	c.HTML(http.StatusOK, "invoice.html", gin.H{
		"Invoice": invoice.Build(b, time.Now()),
	})
}

// pageBase builds the list URL with every control except the page number, so
// templates can append "&page=N".
func pageBase(controls client.ListControls) string {
	q := url.Values{}
	if controls.SearchTerm != "" {
		q.Set("search", controls.SearchTerm)
	}
	q.Set("status", controls.StatusFilter)
	q.Set("service", controls.ServiceFilter)
	q.Set("sort", controls.SortKey)
	q.Set("size", strconv.Itoa(controls.PageSize))
	return "/?" + q.Encode() + "&page="
}

// bookingFields flattens a booking into the update payload, dropping the
// immutable fields the repository would strip anyway.
func bookingFields(b *models.Booking) map[string]interface{} {
	data, _ := json.Marshal(b)
	var fields map[string]interface{}
	_ = json.Unmarshal(data, &fields)
	delete(fields, "bookingId")
	delete(fields, "createdAt")
	return fields
}
