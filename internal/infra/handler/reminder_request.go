package handler

import "time"

type SaveReminderRequest struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	LocationLabel string   `json:"location_label"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type TransitionEventRequest struct {
	RequestIDs []string         `json:"request_ids"`
	Transition string           `json:"transition"`
	Position   *PositionRequest `json:"position"`
	ErrorCode  int              `json:"error_code"`
}

type PositionRequest struct {
	Latitude       float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" binding:"min=-180,max=180"`
	AccuracyMeters float64 `json:"accuracy_meters" binding:"min=0"`
}

type ReportPositionRequest struct {
	Latitude       *float64   `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude      *float64   `json:"longitude" binding:"required,min=-180,max=180"`
	AccuracyMeters float64    `json:"accuracy_meters" binding:"min=0"`
	RecordedAt     *time.Time `json:"recorded_at"`
}

type DeviceSettingsRequest struct {
	LocationEnabled     *bool `json:"location_enabled" binding:"required"`
	GeofencingAvailable *bool `json:"geofencing_available"`
}

type DevicePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"dive,oneof=fine_location background_location"`
}
