package dedupe

// Option applies a configuration option to the in-memory seen-set.
type Option func(*inMemoryDeduper)

// WithCapacity pre-sizes the set for an expected number of ids.
func WithCapacity(n int) Option {
	return func(d *inMemoryDeduper) {
		if n > 0 {
			d.capacity = n
		}
	}
}

// WithFold makes id comparison case-insensitive.
func WithFold() Option {
	return func(d *inMemoryDeduper) {
		d.fold = true
	}
}
