package domain

import (
	"strings"

	"github.com/google/uuid"
)

const maxReminderIDLength = 255

// ReminderID is client generated and only has to be unique, so any non-blank
// string is accepted. Server side generation uses UUIDs.
type ReminderID struct {
	value string
}

func NewReminderID() ReminderID {
	return ReminderID{value: uuid.NewString()}
}

// ReminderIDFromString keeps the id exactly as given. Ids with surrounding
// whitespace are rejected rather than altered.
func ReminderIDFromString(s string) (ReminderID, error) {
	if s == "" || strings.TrimSpace(s) != s || len(s) > maxReminderIDLength {
		return ReminderID{}, ErrInvalidReminderID
	}

	return ReminderID{value: s}, nil
}

func (r ReminderID) String() string {
	return r.value
}

func (r ReminderID) IsZero() bool {
	return r.value == ""
}

func (r ReminderID) Equals(other ReminderID) bool {
	return r.value == other.value
}
