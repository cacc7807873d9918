package domain

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Reminder is created or overwritten by id; there is no partial update.
// A reminder may be stored with one or both coordinates missing, but only a
// reminder carrying both can be geofenced.
type Reminder struct {
	id            ReminderID
	title         string
	description   string
	locationLabel string
	latitude      *float64
	longitude     *float64
}

func NewReminder(
	id ReminderID,
	title string,
	description string,
	locationLabel string,
	latitude *float64,
	longitude *float64,
) (*Reminder, error) {
	if id.IsZero() {
		return nil, ErrInvalidReminderID
	}

	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		return nil, ErrInvalidCoordinates
	}

	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		return nil, ErrInvalidCoordinates
	}

	return Reconstitute(id, title, description, locationLabel, latitude, longitude), nil
}

func Reconstitute(
	id ReminderID,
	title string,
	description string,
	locationLabel string,
	latitude *float64,
	longitude *float64,
) *Reminder {
	return &Reminder{
		id:            id,
		title:         title,
		description:   description,
		locationLabel: locationLabel,
		latitude:      copyFloat(latitude),
		longitude:     copyFloat(longitude),
	}
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) Title() string {
	return r.title
}

func (r *Reminder) Description() string {
	return r.description
}

func (r *Reminder) LocationLabel() string {
	return r.locationLabel
}

func (r *Reminder) Latitude() *float64 {
	return copyFloat(r.latitude)
}

func (r *Reminder) Longitude() *float64 {
	return copyFloat(r.longitude)
}

// Coordinates reports false unless both latitude and longitude are present.
func (r *Reminder) Coordinates() (Coordinates, bool) {
	if r.latitude == nil || r.longitude == nil {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: *r.latitude, Longitude: *r.longitude}, true
}

func (r *Reminder) CanBeGeofenced() bool {
	_, ok := r.Coordinates()

	return ok
}

func (r *Reminder) Equals(other *Reminder) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.id.Equals(other.id) &&
		r.title == other.title &&
		r.description == other.description &&
		r.locationLabel == other.locationLabel &&
		equalFloat(r.latitude, other.latitude) &&
		equalFloat(r.longitude, other.longitude)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}

	v := *f

	return &v
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
