package urth

// Collection is an ordered set of entries indexed by every entry key.
type Collection struct {
	policy  DedupPolicy
	entries []*Entry
	index   map[string]int
}

// NewCollection creates an empty Collection using the given dedup policy.
// An empty policy means DedupOverwrite.
func NewCollection(policy DedupPolicy) *Collection {
	if policy == "" {
		policy = DedupOverwrite
	}
	return &Collection{
		policy: policy,
		index:  make(map[string]int),
	}
}

// Add inserts an entry according to the collection's dedup policy.
// Returns false if the entry was dropped as a duplicate.
func (c *Collection) Add(e *Entry) bool {
	idx, exists := c.index[e.Headword()]
	if exists {
		switch c.policy {
		case DedupKeepFirst:
			return false
		case DedupOverwrite:
			c.entries[idx] = e
			c.reindex(idx)
			return true
		}
	}

	c.entries = append(c.entries, e)
	c.reindex(len(c.entries) - 1)
	return true
}

// Entries returns entries in order of first appearance.
func (c *Collection) Entries() []*Entry {
	return c.entries
}

// Lookup returns the entry reachable under key, or nil.
// With DedupAppend the most recently added entry wins.
func (c *Collection) Lookup(key string) *Entry {
	idx, ok := c.index[key]
	if !ok {
		return nil
	}
	return c.entries[idx]
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Reindex refreshes the key index after entry keys changed.
// A headword always resolves to its own entry, even when it is also another
// entry's variant.
func (c *Collection) Reindex() {
	c.index = make(map[string]int, len(c.entries))
	for i, e := range c.entries {
		for _, k := range e.Keys {
			c.index[k] = i
		}
	}
	for i, e := range c.entries {
		if len(e.Keys) > 0 {
			c.index[e.Headword()] = i
		}
	}
}

func (c *Collection) reindex(idx int) {
	for _, k := range c.entries[idx].Keys {
		c.index[k] = idx
	}
}
