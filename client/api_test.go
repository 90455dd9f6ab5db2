package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"washbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Booking{
			{BookingID: 1, CustomerName: "Asha Rao"},
			{BookingID: 2, CustomerName: "Vikram Singh"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	bookings, err := c.ListBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Asha Rao", bookings[0].CustomerName)
}

func TestGetBookingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Booking not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetBooking(42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Booking not found", apiErr.Message)
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var payload models.Booking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Asha Rao", payload.CustomerName)

		payload.BookingID = 1
		payload.Status = models.StatusPending
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateBooking(&models.Booking{CustomerName: "Asha Rao"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.BookingID)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestUpdateBookingSendsPartialPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/bookings/3", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Completed", payload["status"])
		assert.Len(t, payload, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Booking{BookingID: 3, Status: models.StatusCompleted})
	}))
	defer srv.Close()

	c := New(srv.URL)
	updated, err := c.UpdateBooking(3, map[string]interface{}{"status": "Completed"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestDeleteBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Booking deleted successfully"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteBooking(1))
}

func TestOpaqueErrorBodyFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream broke</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListBookings()
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Something went wrong", apiErr.Message)
	assert.False(t, IsNotFound(err))
}
