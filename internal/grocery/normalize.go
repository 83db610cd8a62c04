package grocery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dukerupert/mealcart/internal/model"
	"golang.org/x/text/unicode/norm"
)

// headerNote marks a recipe section divider such as "For the sauce:".
const headerNote = "header"

// NormalizeName lowercases, trims, and collapses inner whitespace.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MergeKey identifies duplicate quantities of the same item across recipes.
func MergeKey(item, unit string) string {
	return NormalizeName(item) + "|" + NormalizeName(unit)
}

// IsHeader reports whether the line is a non-purchasable section label.
func IsHeader(line model.IngredientLine) bool {
	return NormalizeName(line.Notes) == headerNote
}

// NormalizeLine trims every field of a raw line. It returns false when the
// line is a header or has no item name, in which case it must be dropped.
func NormalizeLine(line model.IngredientLine) (model.IngredientLine, bool) {
	if IsHeader(line) {
		return model.IngredientLine{}, false
	}
	out := model.IngredientLine{
		Amount: strings.TrimSpace(line.Amount),
		Unit:   strings.TrimSpace(line.Unit),
		Item:   strings.Join(strings.Fields(line.Item), " "),
		Notes:  strings.TrimSpace(line.Notes),
	}
	if out.Item == "" {
		return model.IngredientLine{}, false
	}
	return out, true
}

// foldName is the classifier's lookup form: NormalizeName without diacritics,
// so "jalapeño" and "jalapeno" hit the same dictionary entry.
func foldName(s string) string {
	s = NormalizeName(s)
	if isASCII(s) {
		return s
	}
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
