package grocery

import (
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Flour", "flour"},
		{"  Chicken   Breast ", "chicken breast"},
		{"\tgreen\nonions", "green onions"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMergeKey(t *testing.T) {
	if a, b := MergeKey("Flour", "Cups"), MergeKey(" flour ", "cups"); a != b {
		t.Errorf("MergeKey mismatch: %q != %q", a, b)
	}
	if a, b := MergeKey("milk", "cup"), MergeKey("milk", "tbsp"); a == b {
		t.Errorf("MergeKey(milk, cup) == MergeKey(milk, tbsp) = %q", a)
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name   string
		input  model.IngredientLine
		want   model.IngredientLine
		wantOK bool
	}{
		{
			name:   "trims fields",
			input:  model.IngredientLine{Amount: " 2 ", Unit: " cups", Item: "  all purpose   flour ", Notes: " sifted "},
			want:   model.IngredientLine{Amount: "2", Unit: "cups", Item: "all purpose flour", Notes: "sifted"},
			wantOK: true,
		},
		{
			name:  "header",
			input: model.IngredientLine{Item: "For the sauce", Notes: "header"},
		},
		{
			name:  "header case insensitive",
			input: model.IngredientLine{Item: "Topping", Notes: " Header "},
		},
		{
			name:  "empty item",
			input: model.IngredientLine{Amount: "1", Unit: "cup", Item: "   "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeLine(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeLine ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeLine = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFoldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jalapeño", "jalapeno"},
		{"Crème Fraîche", "creme fraiche"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := foldName(tt.input); got != tt.want {
			t.Errorf("foldName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
