package storage

// Provider is the key-value persistence surface the stores write through.
// Values are serialized text blobs; a read of a missing key reports absence,
// not an error. All implementations are local and synchronous.
type Provider interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Keys of the persisted blobs.
const (
	KeyPosts    = "posts"
	KeyUser     = "user"
	KeyLoggedIn = "loggedIn"
)
