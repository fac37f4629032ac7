package profile

import (
	"strings"

	"github.com/honeycarbs/urban-match/internal/domain"
)

// keywordGroups map interest substrings to a category, tested in priority
// order. An interest lands in the first group it matches.
var keywordGroups = []struct {
	preference domain.Preference
	keywords   []string
}{
	{domain.PreferenceRestaurants, []string{"food", "restaurant", "dinner", "eat"}},
	{domain.PreferenceNightlife, []string{"night", "club", "bar", "music", "concert", "dj", "dance"}},
	{domain.PreferenceBrunch, []string{"brunch", "coffee", "cafe"}},
	{domain.PreferenceSports, []string{"sport", "game", "stadium"}},
	{domain.PreferenceShopping, []string{"shop", "mall", "clothes"}},
	{domain.PreferenceParksRecreation, []string{"park", "museum", "hike", "outdoor", "trail", "art", "cinema", "movie"}},
}

// DerivePreferences maps free-text interests onto the supported category
// set. The result is deduplicated, insertion-ordered, and never empty:
// with no recognizable interest it falls back to restaurants.
func DerivePreferences(interests []string) []domain.Preference {
	supported := make(map[domain.Preference]bool, 6)
	for _, p := range domain.SupportedPreferences() {
		supported[p] = true
	}

	var out []domain.Preference
	seen := make(map[domain.Preference]bool, 6)

	add := func(p domain.Preference) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, raw := range interests {
		s := strings.ToLower(strings.TrimSpace(raw))
		if s == "" {
			continue
		}

		if supported[domain.Preference(s)] {
			add(domain.Preference(s))
			continue
		}

		for _, group := range keywordGroups {
			if containsAny(s, group.keywords) {
				add(group.preference)
				break
			}
		}
	}

	if len(out) == 0 {
		out = append(out, domain.PreferenceRestaurants)
	}

	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
