package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/foodtour/foodtour-backend-go/internal/location"
)

func newLocationRouter(t *testing.T) (*gin.Engine, *location.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := location.NewStore(time.Hour)
	t.Cleanup(store.Close)
	h := NewLocationHandler(store, nil)

	r := gin.New()
	r.GET("/location", h.Get)
	r.POST("/location/gps", h.SetGPS)
	r.POST("/location/watch", h.StartWatch)
	r.POST("/location/watch/:watchId/update", h.WatchUpdate)
	return r, store
}

func postJSON(r *gin.Engine, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, body []byte) location.State {
	t.Helper()
	var envelope struct {
		Data location.State `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

// Zero is a legal coordinate: the equator and the prime meridian are places.
func TestSetGPSAcceptsZeroCoordinates(t *testing.T) {
	r, _ := newLocationRouter(t)

	tests := []struct {
		name string
		body string
		lat  float64
		lng  float64
	}{
		{"zero latitude", `{"lat":0,"lng":109.33}`, 0, 109.33},
		{"zero longitude", `{"lat":51.478,"lng":0}`, 51.478, 0},
		{"null island", `{"lat":0,"lng":0}`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/location/gps", "sess-"+tt.name, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
			}
			st := decodeState(t, w.Body.Bytes())
			if st.Mode != location.ModeGPS {
				t.Errorf("mode = %s, want gps", st.Mode)
			}
			if st.Lat == nil || *st.Lat != tt.lat || st.Lng == nil || *st.Lng != tt.lng {
				t.Errorf("coords = %v/%v, want %v/%v", st.Lat, st.Lng, tt.lat, tt.lng)
			}
		})
	}
}

func TestSetGPSRejectsMissingOrInvalidInput(t *testing.T) {
	r, _ := newLocationRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing lng", `{"lat":22.3}`},
		{"missing lat", `{"lng":114.1}`},
		{"empty body", `{}`},
		{"lat out of range", `{"lat":91,"lng":114.1}`},
		{"lng out of range", `{"lat":22.3,"lng":181}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/location/gps", "sess", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestWatchUpdateAcceptsZeroCoordinates(t *testing.T) {
	r, store := newLocationRouter(t)

	watchID, _ := store.StartWatch("sess")
	w := postJSON(r, "/location/watch/"+watchID+"/update", "sess", `{"lat":0,"lng":-0.0015}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	st := decodeState(t, w.Body.Bytes())
	if st.Mode != location.ModeGPS || st.Lat == nil || *st.Lat != 0 {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestLocationEndpointsRequireSession(t *testing.T) {
	r, _ := newLocationRouter(t)

	w := postJSON(r, "/location/gps", "", `{"lat":22.3,"lng":114.1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without session", w.Code)
	}
}
