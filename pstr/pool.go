package pstr

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096
	poolInitCap = 64
)

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{buf: make([]byte, 0, poolInitCap)}
	},
}

// Get returns an empty builder from the pool.
func Get() *Builder {
	return builderPool.Get().(*Builder)
}

// Put resets b and returns it to the pool. Builders that grew past the
// pool cap are dropped instead.
func Put(b *Builder) {
	if b == nil || cap(b.buf) > poolMaxCap {
		return // reject oversized
	}
	b.Reset()
	builderPool.Put(b)
}
