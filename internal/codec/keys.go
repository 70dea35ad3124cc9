package codec

// DefaultNamespace prefixes every key when none is configured.
const DefaultNamespace = "cleartrack"

// Version is appended to every key. Bumping it starts from an empty store
// instead of migrating records in place.
const Version = "v1"

// Keys names the four persisted records.
type Keys struct {
	Users      string
	Complaints string
	Session    string
	Counter    string
}

// NewKeys builds the key set for namespace.
func NewKeys(namespace string) Keys {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Keys{
		Users:      namespace + ".users." + Version,
		Complaints: namespace + ".complaints." + Version,
		Session:    namespace + ".session." + Version,
		Counter:    namespace + ".complaints.counter." + Version,
	}
}
