package capture

// Debouncer filters contact bounce on the trigger pin (edge-debounce policy).
// A level change restarts the window; the stable level only follows the raw
// level once it has held constant for the full window.
type Debouncer struct {
	window     uint32 // µs
	raw        bool
	stable     bool
	lastChange uint32
}

// NewDebouncer returns a debouncer with the given stable window in
// microseconds. Both levels start released.
func NewDebouncer(windowMicros uint32) Debouncer {
	return Debouncer{window: windowMicros}
}

// Update feeds one raw reading (true = pressed) taken at the given time and
// reports whether a stable press transition happened on this call. Release
// transitions are tracked but never reported; the counter may wrap.
func (d *Debouncer) Update(raw bool, nowMicros uint32) bool {
	if raw != d.raw {
		d.raw = raw
		d.lastChange = nowMicros
	}
	if raw == d.stable || nowMicros-d.lastChange < d.window {
		return false
	}
	d.stable = raw
	return d.stable
}

// Stable returns the current debounced level.
func (d *Debouncer) Stable() bool {
	return d.stable
}
