package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"washbay/config"
	"washbay/models"
)

// Client talks to the booking REST API. A zero HTTPClient falls back to a
// client with a sane timeout.
type Client struct {
	BaseURL    string // e.g. "http://localhost:8080/api"
	HTTPClient *http.Client
}

// New returns an API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewDefault returns an API client for the configured API_BASE_URL.
func NewDefault() *Client {
	return New(config.AppConfig.APIBaseURL)
}

// APIError is a failure reported by the server with a structured body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// ListBookings fetches the full booking collection, sorted by bookingId.
func (c *Client) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches a single booking by its bookingId.
func (c *Client) GetBooking(id int) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking submits a new booking and returns the stored record with its
// assigned bookingId.
func (c *Client) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	var created models.Booking
	if err := c.do(http.MethodPost, "/bookings", booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBooking applies the payload to an existing booking. Any bookingId in
// the payload is ignored by the server.
func (c *Client) UpdateBooking(id int, payload map[string]interface{}) (*models.Booking, error) {
	var updated models.Booking
	if err := c.do(http.MethodPut, fmt.Sprintf("/bookings/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBooking removes a booking. Its bookingId is never reused.
func (c *Client) DeleteBooking(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError surfaces the server's structured message when one is present
// and a generic retry prompt otherwise.
func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := "Something went wrong"
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
