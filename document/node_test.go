package document

import (
	"reflect"
	"testing"
)

func TestMappingKeepsOrder(t *testing.T) {
	m := NewMapping()
	m.AddString("b", "x")
	m.AddInt("a", -1)
	m.AddUint("c", 7)
	m.AddBool("d", true)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c", "d"}) {
		t.Errorf("keys: got %v", got)
	}
	if v, ok := m.Get("d"); !ok || v.Value() != "1" || v.ScalarType() != TypeInt {
		t.Errorf("bool should export as 1, got %+v", v)
	}
	if v, _ := m.Get("a"); v.Value() != "-1" {
		t.Errorf("int: got %q", v.Value())
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("missing key reported present")
	}
}

func TestDuplicateKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate key")
		}
	}()
	m := NewMapping()
	m.AddInt("a", 1)
	m.AddInt("a", 2)
}

func TestAddOnSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSequence().AddInt("a", 1)
}

func TestSerializedVersion(t *testing.T) {
	m := NewMapping()
	m.AddSerializedVersion(1)
	if m.Len() != 0 {
		t.Error("revision 1 should not be written")
	}
	m.AddSerializedVersion(2)
	if v, ok := m.Get(SerializedVersionKey); !ok || v.Value() != "2" {
		t.Errorf("revision 2 missing: %v", m.Keys())
	}
}

func TestStringArrayArray(t *testing.T) {
	n := StringArrayArray([][]string{{"A", "B"}, {}})
	if n.Kind() != SequenceNode || n.Len() != 2 {
		t.Fatalf("got kind %v len %d", n.Kind(), n.Len())
	}
	if n.Items()[0].Items()[1].Value() != "B" {
		t.Error("nested value mismatch")
	}
	if n.Items()[1].Len() != 0 {
		t.Error("inner sequence should be empty")
	}
}

func TestFloat(t *testing.T) {
	if got := Float(0.5).Value(); got != "0.5" {
		t.Errorf("got %q", got)
	}
}
