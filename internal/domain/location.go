package domain

import "time"

const (
	DefaultMaxLocationAttempts = 3
	DefaultLocationRetryDelay  = 1250 * time.Millisecond
)

type Position struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
	RecordedAt     time.Time
}

func (p Position) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}

type SettingsPriority string

const (
	PriorityLowPower     SettingsPriority = "low_power"
	PriorityBalanced     SettingsPriority = "balanced"
	PriorityHighAccuracy SettingsPriority = "high_accuracy"
)

type SettingsRequest struct {
	Priority SettingsPriority
}

// LocationAttempt is the state of one acquisition sequence. Count is the
// number of retries already scheduled; the first try happens at zero.
type LocationAttempt struct {
	count int
	max   int
	delay time.Duration
}

func NewLocationAttempt(maxAttempts int, delay time.Duration) LocationAttempt {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	if delay < 0 {
		delay = 0
	}

	return LocationAttempt{max: maxAttempts, delay: delay}
}

// CanRetry reports whether another try fits under the ceiling.
func (a LocationAttempt) CanRetry() bool {
	return a.count+1 < a.max
}

func (a *LocationAttempt) Next() {
	a.count++
}

func (a *LocationAttempt) Reset() {
	a.count = 0
}

func (a LocationAttempt) Count() int {
	return a.count
}

func (a LocationAttempt) Max() int {
	return a.max
}

func (a LocationAttempt) Delay() time.Duration {
	return a.delay
}
