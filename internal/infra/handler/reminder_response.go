package handler

import (
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/device"
)

type ReminderResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	LocationLabel string   `json:"location_label"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
	NoData    bool               `json:"no_data"`
}

type TriggerResponse struct {
	ReminderID string `json:"reminder_id"`
	Title      string `json:"title"`
}

type TransitionResponse struct {
	Triggered []TriggerResponse `json:"triggered"`
}

type LocationResponse struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	RecordedAt     time.Time `json:"recorded_at"`
	Tries          int       `json:"tries"`
}

type GeofenceResponse struct {
	RequestID       string   `json:"request_id"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	RadiusMeters    float64  `json:"radius_meters"`
	Transitions     []string `json:"transitions"`
	InitialTrigger  string   `json:"initial_trigger"`
	NeverExpires    bool     `json:"never_expires"`
	CallbackPurpose string   `json:"callback_purpose"`
}

type GeofencesResponse struct {
	Geofences []GeofenceResponse `json:"geofences"`
	Count     int                `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromDTO(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:            output.ID,
		Title:         output.Title,
		Description:   output.Description,
		LocationLabel: output.LocationLabel,
		Latitude:      output.Latitude,
		Longitude:     output.Longitude,
	}
}

func FromDTOs(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
		NoData:    output.NoData,
	}
}

func FromTransition(output app.TransitionOutput) TransitionResponse {
	triggered := make([]TriggerResponse, 0, len(output.Triggered))
	for _, t := range output.Triggered {
		triggered = append(triggered, TriggerResponse{
			ReminderID: t.ReminderID,
			Title:      t.Title,
		})
	}

	return TransitionResponse{Triggered: triggered}
}

func FromLocation(output app.LocationOutput) LocationResponse {
	return LocationResponse{
		Latitude:       output.Latitude,
		Longitude:      output.Longitude,
		AccuracyMeters: output.AccuracyMeters,
		RecordedAt:     output.RecordedAt,
		Tries:          output.Tries,
	}
}

func FromRegions(regions []device.Region) GeofencesResponse {
	geofences := make([]GeofenceResponse, 0, len(regions))
	for _, r := range regions {
		transitions := make([]string, 0, len(r.Request.Transitions))
		for _, t := range r.Request.Transitions {
			transitions = append(transitions, string(t))
		}

		geofences = append(geofences, GeofenceResponse{
			RequestID:       r.Request.RequestID,
			Latitude:        r.Request.Latitude,
			Longitude:       r.Request.Longitude,
			RadiusMeters:    r.Request.RadiusMeters,
			Transitions:     transitions,
			InitialTrigger:  string(r.Request.InitialTrigger),
			NeverExpires:    r.Request.Expiration < 0,
			CallbackPurpose: r.Callback.Purpose,
		})
	}

	return GeofencesResponse{Geofences: geofences, Count: len(geofences)}
}
