package core

// IDGenerator produces opaque identifiers for new records
type IDGenerator interface {
	NewID() string
}
