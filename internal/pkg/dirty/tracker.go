package dirty

import (
	"context"
	"sort"
	"sync"
)

// Tracked is implemented by every record that owns a Tracker.
type Tracked interface {
	Tracker() *Tracker
}

// Tracker records the names of fields that changed since the last reset.
// Nested trackers (options, metafields of a product) report through their
// owner: the owner is dirty if any nested tracker is dirty, and a reset of the
// owner resets them too.
type Tracker struct {
	mu     sync.Mutex
	fields map[string]struct{}
	nested []func() []*Tracker
}

func New() *Tracker {
	return &Tracker{fields: make(map[string]struct{})}
}

// Mark flags name as changed.
func (t *Tracker) Mark(name string) {
	t.mu.Lock()
	t.fields[name] = struct{}{}
	t.mu.Unlock()
}

// Nest registers a provider of child trackers. The provider is evaluated on
// every query so children added after construction are included.
func (t *Tracker) Nest(children func() []*Tracker) {
	t.mu.Lock()
	t.nested = append(t.nested, children)
	t.mu.Unlock()
}

// Dirty reports pending changes without resetting them.
func (t *Tracker) Dirty() bool {
	t.mu.Lock()
	dirty := len(t.fields) > 0
	nested := t.nested
	t.mu.Unlock()

	if dirty {
		return true
	}
	for _, children := range nested {
		for _, c := range children() {
			if c.Dirty() {
				return true
			}
		}
	}
	return false
}

// Fields returns the sorted names of changed fields on this tracker only.
func (t *Tracker) Fields() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.fields))
	for f := range t.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// GetDirtyAndReset reports whether anything changed and clears the record,
// including nested trackers.
func (t *Tracker) GetDirtyAndReset() bool {
	t.mu.Lock()
	dirty := len(t.fields) > 0
	clear(t.fields)
	nested := t.nested
	t.mu.Unlock()

	for _, children := range nested {
		for _, c := range children() {
			if c.GetDirtyAndReset() {
				dirty = true
			}
		}
	}
	return dirty
}

// IfDirty resets the tracker of v and runs fn only if something was pending.
func IfDirty[T Tracked](ctx context.Context, v T, fn func(ctx context.Context, v T) error) error {
	if !v.Tracker().GetDirtyAndReset() {
		return nil
	}
	return fn(ctx, v)
}
