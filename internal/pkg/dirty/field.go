package dirty

// Field is a named value whose changes are reported to a Tracker.
// Get and Set serialize on the tracker mutex, so concurrent writers on the
// same record never lose a mark.
type Field[T any] struct {
	name    string
	tracker *Tracker
	equal   func(a, b T) bool
	value   T
}

// Track registers a comparable field.
func Track[T comparable](t *Tracker, name string, initial T) *Field[T] {
	return TrackFunc(t, name, initial, func(a, b T) bool { return a == b })
}

// TrackFunc registers a field with a custom equality, for values such as
// decimals or slices that cannot be compared with ==.
func TrackFunc[T any](t *Tracker, name string, initial T, equal func(a, b T) bool) *Field[T] {
	return &Field[T]{name: name, tracker: t, equal: equal, value: initial}
}

func (f *Field[T]) Name() string { return f.name }

func (f *Field[T]) Get() T {
	f.tracker.mu.Lock()
	defer f.tracker.mu.Unlock()
	return f.value
}

// Set stores v and marks the field when v differs from the current value.
func (f *Field[T]) Set(v T) {
	f.tracker.mu.Lock()
	defer f.tracker.mu.Unlock()

	if f.equal(f.value, v) {
		return
	}
	f.value = v
	f.tracker.fields[f.name] = struct{}{}
}
