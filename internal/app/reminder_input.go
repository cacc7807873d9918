package app

import "github.com/KasumiMercury/primind-location-remind/internal/domain"

// SaveReminderInput is the reminder as collected from the client. An empty
// ID asks the service to generate one.
type SaveReminderInput struct {
	ID            string
	Title         string
	Description   string
	LocationLabel string
	Latitude      *float64
	Longitude     *float64
}

type GetReminderInput struct {
	ID string
}

type DeleteReminderInput struct {
	ID string
}

type TransitionEventInput struct {
	RequestIDs []string
	Transition string
	Position   *PositionInput
	ErrorCode  int
}

type PositionInput struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
}

func (p *PositionInput) toDomain() *domain.Position {
	if p == nil {
		return nil
	}

	return &domain.Position{
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		AccuracyMeters: p.AccuracyMeters,
	}
}
