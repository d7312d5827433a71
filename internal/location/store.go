package location

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodtour/foodtour-backend-go/internal/spatial"
)

// Mode indicates how the current coordinates were obtained
type Mode string

const (
	ModePrompt Mode = "prompt" // 初始状态，尚未询问
	ModeGPS    Mode = "gps"    // 设备定位成功
	ModeManual Mode = "manual" // 手动输入地址
	ModeNone   Mode = "none"   // 浏览器不支持定位
)

// ErrorCode classifies a geolocation failure
type ErrorCode string

const (
	ErrCodePermissionDenied    ErrorCode = "permission_denied"
	ErrCodePositionUnavailable ErrorCode = "position_unavailable"
	ErrCodeTimeout             ErrorCode = "timeout"
	ErrCodeUnsupported         ErrorCode = "unsupported"
)

// errorMessages maps error codes to the user-facing strings shown by the client
var errorMessages = map[ErrorCode]string{
	ErrCodePermissionDenied:    "定位权限被拒绝，请手动输入地址",
	ErrCodePositionUnavailable: "暂时无法获取位置，请手动输入地址",
	ErrCodeTimeout:             "定位超时，请手动输入地址",
	ErrCodeUnsupported:         "当前浏览器不支持定位",
}

var (
	// ErrInvalidCoordinates is returned when lat/lng are NaN, infinite or out of range
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrStaleWatch is returned when a watch update carries a superseded handle
	ErrStaleWatch = errors.New("stale watch handle")
)

// State is the location acquisition state for one session.
// Invariant: Mode gps or manual implies Asking == false.
type State struct {
	Mode      Mode      `json:"mode"`
	Lat       *float64  `json:"lat"`
	Lng       *float64  `json:"lng"`
	Address   string    `json:"address"`
	Asking    bool      `json:"asking"`
	WatchID   string    `json:"watchId,omitempty"`
	ErrCode   ErrorCode `json:"errCode,omitempty"`
	ErrMsg    string    `json:"errMsg,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store keeps per-session location state. Every mutation goes through a
// single reducer under one mutex, so last-writer-wins is the explicit policy
// rather than an accident of call order.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]State
	ttl       time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// NewStore creates a new location store. Sessions idle longer than the TTL
// are dropped by a background sweep until Close is called.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &Store{
		sessions: make(map[string]State),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Close stops the background sweep. Safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// cleanup removes idle sessions periodically
func (s *Store) cleanup() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for id, st := range s.sessions {
				if now.Sub(st.UpdatedAt) > s.ttl {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

type actionKind int

const (
	actSetGPS actionKind = iota
	actSetManual
	actBeginAutoDetect
	actFailAutoDetect
	actStartWatch
	actWatchUpdate
	actStopWatch
	actReset
	actUnsupported
)

type action struct {
	kind    actionKind
	lat     *float64
	lng     *float64
	address string
	code    ErrorCode
	watchID string
}

// apply is the single reducer for all state transitions
func (s *Store) apply(session string, a action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[session]
	if !ok {
		st = State{Mode: ModePrompt}
	}

	switch a.kind {
	case actSetGPS:
		if !spatial.ValidCoordinates(*a.lat, *a.lng) {
			return st, ErrInvalidCoordinates
		}
		st.Mode = ModeGPS
		st.Lat = a.lat
		st.Lng = a.lng
		st.Asking = false
		st.ErrCode = ""
		st.ErrMsg = ""

	case actSetManual:
		if a.lat != nil && a.lng != nil {
			if !spatial.ValidCoordinates(*a.lat, *a.lng) {
				return st, ErrInvalidCoordinates
			}
			st.Lat = a.lat
			st.Lng = a.lng
		}
		st.Mode = ModeManual
		st.Address = a.address
		st.Asking = false
		st.ErrCode = ""
		st.ErrMsg = ""

	case actBeginAutoDetect:
		st.Mode = ModePrompt
		st.Asking = true

	case actFailAutoDetect:
		// Any failure falls back to manual entry; the code is kept so
		// callers can still tell permission denial from a timeout.
		st.Mode = ModeManual
		st.Asking = false
		st.ErrCode = a.code
		st.ErrMsg = errorMessages[a.code]

	case actStartWatch:
		// Starting a watch replaces any prior subscription handle, so a
		// leaked earlier watch can never write through a stale handle.
		st.WatchID = a.watchID

	case actWatchUpdate:
		if st.WatchID == "" || st.WatchID != a.watchID {
			return st, ErrStaleWatch
		}
		if !spatial.ValidCoordinates(*a.lat, *a.lng) {
			return st, ErrInvalidCoordinates
		}
		st.Mode = ModeGPS
		st.Lat = a.lat
		st.Lng = a.lng
		st.Asking = false
		st.ErrCode = ""
		st.ErrMsg = ""

	case actStopWatch:
		// Stopping with a superseded handle is a no-op
		if st.WatchID == a.watchID {
			st.WatchID = ""
		}

	case actReset:
		st = State{Mode: ModePrompt}

	case actUnsupported:
		st.Mode = ModeNone
		st.Asking = false
		st.ErrCode = ErrCodeUnsupported
		st.ErrMsg = errorMessages[ErrCodeUnsupported]
	}

	st.UpdatedAt = time.Now()
	s.sessions[session] = st
	return st, nil
}

// Get returns the current state for a session, defaulting to prompt
func (s *Store) Get(session string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[session]
	if !ok {
		return State{Mode: ModePrompt}
	}
	return st
}

// SetGPS overwrites coordinates from a successful device fix
func (s *Store) SetGPS(session string, lat, lng float64) (State, error) {
	return s.apply(session, action{kind: actSetGPS, lat: &lat, lng: &lng})
}

// SetManual records a manually entered address with optional coordinates
func (s *Store) SetManual(session, address string, lat, lng *float64) (State, error) {
	return s.apply(session, action{kind: actSetManual, address: address, lat: lat, lng: lng})
}

// BeginAutoDetect marks the session as waiting for a one-shot device fix
func (s *Store) BeginAutoDetect(session string) State {
	st, _ := s.apply(session, action{kind: actBeginAutoDetect})
	return st
}

// ResolveAutoDetect applies a successful one-shot fix
func (s *Store) ResolveAutoDetect(session string, lat, lng float64) (State, error) {
	return s.SetGPS(session, lat, lng)
}

// FailAutoDetect applies a failed one-shot fix
func (s *Store) FailAutoDetect(session string, code ErrorCode) State {
	if _, ok := errorMessages[code]; !ok {
		code = ErrCodePositionUnavailable
	}
	st, _ := s.apply(session, action{kind: actFailAutoDetect, code: code})
	return st
}

// StartWatch opens a continuous subscription, superseding any existing one
func (s *Store) StartWatch(session string) (string, State) {
	id := uuid.New().String()
	st, _ := s.apply(session, action{kind: actStartWatch, watchID: id})
	return id, st
}

// WatchUpdate applies a position update for the given watch handle
func (s *Store) WatchUpdate(session, watchID string, lat, lng float64) (State, error) {
	return s.apply(session, action{kind: actWatchUpdate, watchID: watchID, lat: &lat, lng: &lng})
}

// StopWatch closes the subscription if the handle is still current
func (s *Store) StopWatch(session, watchID string) State {
	st, _ := s.apply(session, action{kind: actStopWatch, watchID: watchID})
	return st
}

// Reset returns the session to the initial prompt state
func (s *Store) Reset(session string) State {
	st, _ := s.apply(session, action{kind: actReset})
	return st
}

// Unsupported marks the session's client as unable to geolocate
func (s *Store) Unsupported(session string) State {
	st, _ := s.apply(session, action{kind: actUnsupported})
	return st
}

// ErrorMessage returns the canned user-facing string for a code
func ErrorMessage(code ErrorCode) string {
	return errorMessages[code]
}
