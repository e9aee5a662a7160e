package repository

// AttributeRepository defines persistence for per-user conversation
// attributes. Get never fails on a missing record; an empty map is
// created and returned instead.
type AttributeRepository interface {
	Get(userID string) (map[string]any, error)
	Put(userID string, data map[string]any) error
}
