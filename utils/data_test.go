package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestOrderedMapToString(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, any]()
	if s := OrderedMapToString(m); s != "[]" {
		t.Fatalf("empty map = %q", s)
	}
	m.Set("turn", 3)
	m.Set("robot", "bots.Hunter")
	m.Set("damage", 12.5)
	if s := OrderedMapToString(m); s != "[turn=3 robot=bots.Hunter damage=12.5]" {
		t.Fatalf("unexpected string %q", s)
	}
	if s := OrderedMapToString(nil); s != "[]" {
		t.Fatalf("nil map = %q", s)
	}
}
