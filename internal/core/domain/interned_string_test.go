package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/pkgr/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("newtonsoft.json")
	is2 := domain.NewInternedString("newtonsoft.json")

	if is1 != is2 {
		t.Errorf("Expected interned strings to be equal for identical input")
	}

	if is1.String() != "newtonsoft.json" {
		t.Errorf("Expected String() to return %q, got %q", "newtonsoft.json", is1.String())
	}

	var zero domain.InternedString
	if !zero.IsZero() || zero.String() != "" {
		t.Errorf("Expected zero value to be empty")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type wrapper struct {
		ID domain.InternedString `json:"id"`
	}

	original := wrapper{ID: domain.NewInternedString("serilog")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"id":"serilog"}` {
		t.Errorf("Unexpected JSON %q", string(data))
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.ID != original.ID {
		t.Errorf("Expected %q, got %q", original.ID, decoded.ID)
	}
}

func TestNormalizeID(t *testing.T) {
	if domain.NormalizeID("Newtonsoft.Json") != domain.NormalizeID("NEWTONSOFT.JSON") {
		t.Error("Expected ids differing only by case to normalize to the same key")
	}
	if got := domain.NormalizeID("Serilog").String(); got != "serilog" {
		t.Errorf("Expected lower-cased id, got %q", got)
	}
}
