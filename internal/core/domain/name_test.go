package domain_test

import (
	"testing"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/json"
)

func TestName(t *testing.T) {
	n1 := domain.NewName("Widget")
	n2 := domain.NewName("Widget")

	if n1 != n2 {
		t.Errorf("Expected interned names to be equal, got %v and %v", n1, n2)
	}
	if n1.String() != "Widget" {
		t.Errorf("Expected String() to return %q, got %q", "Widget", n1.String())
	}
	if n1.IsNone() {
		t.Error("Expected non-empty name not to be None")
	}
}

func TestName_Empty(t *testing.T) {
	n := domain.NewName("")
	if !n.IsNone() {
		t.Error("Expected empty name to be None")
	}
	if n.String() != "" {
		t.Errorf("Expected empty string, got %q", n.String())
	}
}

func TestName_JSON(t *testing.T) {
	type holder struct {
		Name domain.Name `json:"name"`
	}

	data, err := json.Marshal(holder{Name: domain.NewName("Foo")})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `{"name":"Foo"}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var got holder
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if got.Name != domain.NewName("Foo") {
		t.Errorf("Expected Foo, got %q", got.Name.String())
	}
}
