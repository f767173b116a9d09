package hydrate

import (
	"testing"

	"gorm.io/datatypes"
)

func TestStringListDecodes(t *testing.T) {
	raw := datatypes.JSON(`["https://a.example/1.jpg","https://a.example/2.jpg"]`)
	got := StringList(raw, "showroom_images", nil)
	if len(got) != 2 || got[0] != "https://a.example/1.jpg" {
		t.Fatalf("got %v", got)
	}
}

func TestStringListDefaultsOnGarbage(t *testing.T) {
	tests := []datatypes.JSON{
		nil,
		datatypes.JSON(``),
		datatypes.JSON(`not json at all`),
		datatypes.JSON(`{"wrong":"shape"}`),
		datatypes.JSON(`null`),
	}
	for _, raw := range tests {
		got := StringList(raw, "gallery_images", nil)
		if got == nil {
			t.Fatalf("StringList(%q) returned nil, want empty slice", raw)
		}
		if len(got) != 0 {
			t.Fatalf("StringList(%q) = %v, want empty", raw, got)
		}
	}
}

func TestStringMapDecodes(t *testing.T) {
	raw := datatypes.JSON(`{"Sun-Thu":"9:00 AM - 9:00 PM","Fri":"Closed"}`)
	got := StringMap(raw, "business_hours", nil)
	if got["Fri"] != "Closed" || got["Sun-Thu"] != "9:00 AM - 9:00 PM" {
		t.Fatalf("got %v", got)
	}
}

func TestStringMapDefaultsOnGarbage(t *testing.T) {
	tests := []datatypes.JSON{
		nil,
		datatypes.JSON(``),
		datatypes.JSON(`[1,2,3]`),
		datatypes.JSON(`null`),
	}
	for _, raw := range tests {
		got := StringMap(raw, "business_hours", nil)
		if got == nil {
			t.Fatalf("StringMap(%q) returned nil, want empty map", raw)
		}
		if len(got) != 0 {
			t.Fatalf("StringMap(%q) = %v, want empty", raw, got)
		}
	}
}
