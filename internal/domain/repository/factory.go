package repository

// Factory exposes the repositories backed by a single store connection.
type Factory interface {
	Users() UserRepository
}
