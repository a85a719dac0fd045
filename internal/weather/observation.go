package weather

import "context"

// Observation is a persisted weather record. ID is assigned by the store
// on insert and never changes; the other fields are nullable.
type Observation struct {
	ID          int64 `json:"id" db:"id"`
	Location    Value `json:"location" db:"location"`
	Temperature Value `json:"temperature" db:"temperature"`
	Description Value `json:"description" db:"description"`
	Date        Value `json:"date" db:"date"`
}

// ObservationInput carries the caller-writable fields of an Observation.
// Absent fields stay null and are written as NULL.
type ObservationInput struct {
	Location    Value `json:"location"`
	Temperature Value `json:"temperature"`
	Description Value `json:"description"`
	Date        Value `json:"date"`
}

// WithID returns the Observation made of in and id.
func (in ObservationInput) WithID(id int64) Observation {
	return Observation{
		ID:          id,
		Location:    in.Location,
		Temperature: in.Temperature,
		Description: in.Description,
		Date:        in.Date,
	}
}

// UpdateEcho is the response to an update: the caller's input under the id
// exactly as it appeared in the request path.
type UpdateEcho struct {
	ID string `json:"id"`
	ObservationInput
}

// ObservationStore is the contract the SQL store (and the in-memory store) must satisfy.
// Update and Delete report the number of affected rows; zero is not an error.
type ObservationStore interface {
	Insert(ctx context.Context, in ObservationInput) (int64, error)
	List(ctx context.Context) ([]Observation, error)
	Get(ctx context.Context, id int64) (Observation, error)
	Update(ctx context.Context, id int64, in ObservationInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Health(ctx context.Context) error
	Close() error
}
