package workspace

// tagCatalog caches the distinct tag set across the user's notes. It is a
// projection of server state: replaced wholesale on every successful refresh
// and kept intact when a refresh fails. Access is guarded by the
// coordinator's mutex.
type tagCatalog struct {
	tags []string
}

// replace installs the new tag set.
func (c *tagCatalog) replace(tags []string) {
	c.tags = tags
}

// snapshot returns a copy of the cached tag set.
func (c *tagCatalog) snapshot() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}
