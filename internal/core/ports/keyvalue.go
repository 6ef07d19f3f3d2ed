package ports

import "context"

// Persisted key layout. Each key holds one independently written text
// blob; every write fully replaces the previous value.
const (
	KeyUsers       = "users"
	KeyRequests    = "bloodRequests"
	KeyCurrentUser = "currentUser"
)

// KeyValue is the persistence adapter contract: get/set/delete of named
// text blobs. A missing key is a normal state reported via ok=false,
// never an error. No transactional guarantees beyond single-key atomic
// replace.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
