package md2bgg

import "runtime"

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps the number of converters held by a pool; past this
	// point batch conversion is I/O bound rather than CPU bound.
	MaxPoolSize = 16
)

// ConverterPool manages a pool of Converter instances for parallel batch
// processing. Converters are cheap to create but carry a configured Goldmark
// instance, so reusing them across files avoids repeated setup.
type ConverterPool struct {
	size int
	sem  chan *Converter
}

// NewConverterPool creates a pool with n Converter instances, all configured
// with the same options. Returns error if converter creation fails.
func NewConverterPool(n int, opts ...Option) (*ConverterPool, error) {
	if n < 1 {
		n = 1
	}

	p := &ConverterPool{
		size: n,
		sem:  make(chan *Converter, n),
	}
	for i := 0; i < n; i++ {
		conv, err := NewConverter(opts...)
		if err != nil {
			return nil, err
		}
		p.sem <- conv
	}
	return p, nil
}

// Acquire gets a converter from the pool.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() *Converter {
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(conv *Converter) {
	p.sem <- conv
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0)

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
