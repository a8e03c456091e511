package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const googleGeocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

var (
	// ErrGeocodeNotConfigured means the Maps API key is missing (server
	// misconfiguration, not a caller problem).
	ErrGeocodeNotConfigured = errors.New("GOOGLE_MAPS_API_KEY not set")
	// ErrGeocodeUpstream wraps failures reported by the Maps API itself.
	ErrGeocodeUpstream = errors.New("reverse geocoding failed")
)

type GeocodeService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGeocodeService initializes the Google Maps geocoding client.
func NewGeocodeService() *GeocodeService {
	return &GeocodeService{
		apiKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		endpoint: googleGeocodeEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// ReverseGeocode resolves coordinates to a human-readable address.
func (s *GeocodeService) ReverseGeocode(lat, lng float64) (string, error) {
	if s.apiKey == "" {
		return "", ErrGeocodeNotConfigured
	}

	q := url.Values{}
	q.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("key", s.apiKey)

	resp, err := s.client.Get(s.endpoint + "?" + q.Encode())
	if err != nil {
		return "", fmt.Errorf("failed to call geocoding API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read geocoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API error %d: %s", ErrGeocodeUpstream, resp.StatusCode, string(body))
	}

	var gr geocodeResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse geocoding JSON: %w", err)
	}
	if gr.Status != "OK" || len(gr.Results) == 0 {
		if gr.ErrorMessage != "" {
			return "", fmt.Errorf("%w: %s: %s", ErrGeocodeUpstream, gr.Status, gr.ErrorMessage)
		}
		return "", fmt.Errorf("%w: %s", ErrGeocodeUpstream, gr.Status)
	}

	return gr.Results[0].FormattedAddress, nil
}
