package casemap

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings by locale collation rules. The underlying
// table is built once on first use. A nil Collator falls back to plain
// byte order, so callers can treat collation as optional.
type Collator struct {
	tag  language.Tag
	once sync.Once
	coll *collate.Collator
}

// NewCollator returns a collator for the given locale.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{tag: tag}
}

// Compare orders a and b: -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	if c == nil {
		return strings.Compare(a, b)
	}
	c.once.Do(func() {
		c.coll = collate.New(c.tag)
	})
	return c.coll.CompareString(a, b)
}

var defaultCollator = NewCollator(language.Und)

// Compare orders a and b using the shared root-locale collator.
func Compare(a, b string) int {
	return defaultCollator.Compare(a, b)
}
