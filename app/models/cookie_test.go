package models_test

import (
	"testing"

	"github.com/ovenfresh/cookieshop/app/models"
)

func TestJSONMapScanDefaults(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"empty bytes", []byte{}},
		{"malformed", "{not json"},
		{"json null", "null"},
		{"wrong shape", `["a","b"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m models.JSONMap
			if err := m.Scan(tc.src); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if m == nil {
				t.Fatal("scanned map is nil, want empty map")
			}
			if len(m) != 0 {
				t.Errorf("scanned map = %v, want empty", m)
			}
		})
	}
}

func TestJSONMapScanValid(t *testing.T) {
	var m models.JSONMap
	if err := m.Scan(`{"calories":250,"protein":3}`); err != nil {
		t.Fatal(err)
	}
	if m["calories"] != float64(250) {
		t.Errorf("calories = %v", m["calories"])
	}
}

func TestJSONMapValueNil(t *testing.T) {
	var m models.JSONMap
	v, err := m.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "{}" {
		t.Errorf("Value() = %v, want {}", v)
	}
}

func TestStringListScanDefaults(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"malformed", "[broken"},
		{"json null", "null"},
		{"wrong shape", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l models.StringList
			if err := l.Scan(tc.src); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if l == nil {
				t.Fatal("scanned list is nil, want empty list")
			}
			if len(l) != 0 {
				t.Errorf("scanned list = %v, want empty", l)
			}
		})
	}
}

func TestStringListRoundTrip(t *testing.T) {
	original := models.StringList{"Gluten", "Dairy"}
	v, err := original.Value()
	if err != nil {
		t.Fatal(err)
	}

	var scanned models.StringList
	if err := scanned.Scan(v); err != nil {
		t.Fatal(err)
	}
	if len(scanned) != 2 || scanned[0] != "Gluten" || scanned[1] != "Dairy" {
		t.Errorf("round trip = %v", scanned)
	}
}

func TestStringListValueNil(t *testing.T) {
	var l models.StringList
	v, err := l.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "[]" {
		t.Errorf("Value() = %v, want []", v)
	}
}
