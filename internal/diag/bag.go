package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a fixed limit. Diagnostics past the
// limit are counted, not stored.
type Bag struct {
	items   []Diagnostic
	limit   uint16
	dropped int
}

func NewBag(limit int) *Bag {
	capped, err := safecast.Conv[uint16](limit)
	if err != nil {
		capped = math.MaxUint16
	}
	return &Bag{items: make([]Diagnostic, 0, min(int(capped), 16)), limit: capped}
}

// Add reports false once the limit is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.limit) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Limit() uint16 { return b.limit }

// Dropped is how many Add calls hit the limit.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int { return len(b.items) }

// Items aliases the internal slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Worst returns the highest severity in the bag and false when it is empty.
func (b *Bag) Worst() (Severity, bool) {
	if len(b.items) == 0 {
		return SevHint, false
	}
	worst := b.items[0].Severity
	for _, d := range b.items[1:] {
		worst = max(worst, d.Severity)
	}
	return worst, true
}

func (b *Bag) HasErrors() bool {
	sev, ok := b.Worst()
	return ok && sev >= SevError
}

// Merge takes everything from other, raising the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	if total > int(b.limit) {
		b.limit = uint16(min(total, math.MaxUint16)) // #nosec G115 -- clamped
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders by path, then span, then severity (worst first), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		if c := cmp.Compare(x.Path, y.Path); c != 0 {
			return c
		}
		if c := x.Primary.Start.Compare(y.Primary.Start); c != 0 {
			return c
		}
		if c := x.Primary.End.Compare(y.Primary.End); c != 0 {
			return c
		}
		if c := cmp.Compare(y.Severity, x.Severity); c != 0 {
			return c
		}
		return cmp.Compare(x.Code, y.Code)
	})
}

// Dedup drops repeats of the same code at the same place, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		path string
		code Code
		span string
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Path, d.Code, d.Primary.String()}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
