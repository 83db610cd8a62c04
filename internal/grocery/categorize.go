package grocery

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// waterExemptions keep purchasable water products on the list.
var waterExemptions = []string{"bottled", "gallon", "sparkling", "coconut"}

// minReverseMatch is the shortest input allowed to match a longer dictionary
// key by containment ("chick" is not a useful prefix of everything).
const minReverseMatch = 3

var (
	exactMatch    map[string]Category
	substringKeys []string
)

func init() {
	exactMatch = make(map[string]Category)
	for _, g := range dictionary {
		for _, name := range g.names {
			exactMatch[name] = g.category
			substringKeys = append(substringKeys, name)
		}
	}
	slices.SortFunc(substringKeys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// Classify returns the department tag for an ingredient name.
//
// Lookup order is: tap-water skip rule, exact dictionary match, keys the
// name contains (longest key first), keys that contain the name, keyword
// fallback, and finally Produce. An empty name is Uncategorized.
func Classify(itemName string) Category {
	name := foldName(itemName)
	if name == "" {
		return Uncategorized
	}

	if isTapWater(name) {
		return Skip
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	for _, key := range substringKeys {
		if strings.Contains(name, key) {
			return exactMatch[key]
		}
	}

	if cat, ok := containingCategory(name); ok {
		return cat
	}

	for _, g := range keywordFallback {
		for _, kw := range g.keywords {
			if strings.Contains(name, kw) {
				return g.category
			}
		}
	}

	return Produce
}

// containingCategory looks for dictionary keys that contain name. It only
// answers when every such key shares one category; "cream" sits inside
// dairy, frozen and canned-goods keys and is left to the keyword fallback.
func containingCategory(name string) (Category, bool) {
	if utf8.RuneCountInString(name) < minReverseMatch {
		return "", false
	}
	var found Category
	for _, key := range substringKeys {
		if !strings.Contains(key, name) {
			continue
		}
		cat := exactMatch[key]
		if found != "" && found != cat {
			return "", false
		}
		found = cat
	}
	return found, found != ""
}

// isTapWater reports whether name mentions water as a word and carries none
// of the words that make it a store product. Joined words such as
// "rosewater" or "watercress" are not water.
func isTapWater(name string) bool {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if !slices.Contains(words, "water") {
		return false
	}
	for _, ex := range waterExemptions {
		if strings.Contains(name, ex) {
			return false
		}
	}
	return true
}
