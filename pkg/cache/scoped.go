package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple documents can share
// one backend without key collisions. The preview server scopes keys by
// the loaded document's path.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "doc:apartment.json:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
