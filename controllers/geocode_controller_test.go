package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmad-zhafir/ReFeed-sub001/services"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/geocode/reverse", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestReverseGeocodeRequiresCoordinates(t *testing.T) {
	gc := NewGeocodeController(services.NewGeocodeService())

	for _, body := range []string{`{}`, `{"latitude": 3.14}`, `{"longitude": 101.69}`} {
		if w := postJSON(t, gc.ReverseGeocode, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestReverseGeocodeWithoutAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	gc := NewGeocodeController(services.NewGeocodeService())

	w := postJSON(t, gc.ReverseGeocode, `{"latitude": 3.1390, "longitude": 101.6869}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
