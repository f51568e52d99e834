package store

// HealthStore reports whether the backing database answers queries.
type HealthStore interface {
	Ping() error
}
