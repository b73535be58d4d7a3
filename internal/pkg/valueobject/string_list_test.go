package valueobject

import "testing"

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v.([]byte)) != `["a","b"]` {
		t.Fatalf("unexpected value %s", v)
	}

	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v.([]byte)) != `[]` {
		t.Fatalf("expected empty array for nil list, got %s", v)
	}
}

func TestStringListScan(t *testing.T) {
	var s StringList
	if err := s.Scan([]byte(`["x","y"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 2 || s[0] != "x" {
		t.Fatalf("unexpected list %v", s)
	}

	if err := s.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("expected empty list from nil, got %v", s)
	}

	if err := s.Scan(42); err == nil {
		t.Fatal("expected error for non-byte value")
	}
}

func TestStringListContains(t *testing.T) {
	s := StringList{"home", "work"}
	if !s.Contains("work") {
		t.Fatal("expected list to contain work")
	}
	if s.Contains("gym") {
		t.Fatal("did not expect list to contain gym")
	}
}
