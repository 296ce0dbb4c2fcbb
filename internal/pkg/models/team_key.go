package models

import "strings"

// clubAffixes are dropped from either end of a team name before lookup.
var clubAffixes = map[string]bool{
	"fc":  true,
	"cf":  true,
	"afc": true,
	"sc":  true,
}

// TeamKey normalizes a team name for strength lookups, so that
// "Liverpool FC", " liverpool " and "LIVERPOOL" resolve to the same key.
func TeamKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	s = strings.NewReplacer(".", " ", "/", " ", "\\", " ", "|", " ").Replace(s)
	words := strings.Fields(s)

	for len(words) > 1 && clubAffixes[words[0]] {
		words = words[1:]
	}
	for len(words) > 1 && clubAffixes[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
