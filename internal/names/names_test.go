package names

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  NameParts
	}{
		{"Jane", NameParts{FirstName: "Jane"}},
		{"Jane Doe", NameParts{FirstName: "Jane", LastName: "Doe"}},
		{"Jane Mary Doe", NameParts{FirstName: "Jane", MiddleName: "Mary", LastName: "Doe"}},
		{"Jane Mary Doe Smith", NameParts{FirstName: "Jane", MiddleName: "Mary", LastName: "Doe Smith"}},
		{"  Jane \t Mary\n\nDoe   Smith  ", NameParts{FirstName: "Jane", MiddleName: "Mary", LastName: "Doe Smith"}},
		{"", NameParts{}},
		{" \t\n ", NameParts{}},
	}

	for _, tt := range tests {
		if got := Split(tt.input); got != tt.want {
			t.Errorf("Split(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestNamePartsJSON(t *testing.T) {
	data, err := json.Marshal(Split("Jane"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"first_name":"Jane","middle_name":null,"last_name":null}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded NameParts
	if err := json.Unmarshal([]byte(`{"first_name":"Jane","last_name":"Doe Smith"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != (NameParts{FirstName: "Jane", LastName: "Doe Smith"}) {
		t.Errorf("Unmarshal = %+v", decoded)
	}
}

func TestFullAndIsEmpty(t *testing.T) {
	if got := Split("Jane Mary Doe Smith").Full(); got != "Jane Mary Doe Smith" {
		t.Errorf("Full = %q", got)
	}
	if got := (NameParts{FirstName: "Jane", LastName: "Doe"}).Full(); got != "Jane Doe" {
		t.Errorf("Full = %q", got)
	}
	if !Split("   ").IsEmpty() {
		t.Error("whitespace input should be empty")
	}
}

// Splitting never loses or reorders tokens.
func TestProperty_SplitPreservesTokens(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	tokenGen := gen.Identifier()

	properties.Property("Full(Split(s)) equals the normalized input", prop.ForAll(
		func(tokens []string) bool {
			input := "  " + strings.Join(tokens, " \t ") + " "
			return Split(input).Full() == strings.Join(tokens, " ")
		},
		gen.SliceOf(tokenGen),
	))

	properties.Property("middle name is set only for three or more tokens", prop.ForAll(
		func(tokens []string) bool {
			parts := Split(strings.Join(tokens, " "))
			return (parts.MiddleName != "") == (len(tokens) >= 3)
		},
		gen.SliceOf(tokenGen),
	))

	properties.TestingRun(t)
}
