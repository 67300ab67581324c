package id

import (
	"sort"
	"testing"
)

func TestNextMonotonicWithinMillisecond(t *testing.T) {
	fixed := int64(1_700_000_000_000)
	orig := NowMs
	NowMs = func() int64 { return fixed }
	defer func() { NowMs = orig }()

	g := NewGenerator()
	prev := g.Next().String()
	for i := 0; i < 100; i++ {
		next := g.Next().String()
		if next <= prev {
			t.Fatalf("ids not increasing: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestNextSurvivesBackwardsClock(t *testing.T) {
	ms := int64(1_700_000_000_000)
	orig := NowMs
	NowMs = func() int64 { return ms }
	defer func() { NowMs = orig }()

	g := NewGenerator()
	a := g.Next().String()
	ms -= 5_000
	b := g.Next().String()
	if b <= a {
		t.Fatalf("backwards clock broke ordering: %s then %s", a, b)
	}
}

func TestStringIsSortableHex(t *testing.T) {
	g := NewGenerator()
	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		s := g.Next().String()
		if len(s) != 32 {
			t.Fatalf("hex length: %d", len(s))
		}
		ids = append(ids, s)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("ids not lexicographically sorted: %v", ids)
	}
}
