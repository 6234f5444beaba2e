package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Yalort/lootgen/internal/loot"
)

// AllTags returns the declared tag list when there is one, otherwise the
// sorted set of tags used by items.
func AllTags(items []loot.Item, declared []string) []string {
	if declared != nil {
		return append([]string{}, declared...)
	}
	seen := make(map[string]bool)
	tags := []string{}
	for _, it := range items {
		for _, t := range it.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// ParseTagList splits a comma-separated tag list, dropping blanks and
// repeats. Order of first appearance is kept.
func ParseTagList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		t := strings.TrimSpace(part)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// UnknownTags returns the requested tags that are not in known.
func UnknownTags(requested, known []string) []string {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	var out []string
	for _, t := range requested {
		if !set[t] {
			out = append(out, t)
		}
	}
	return out
}

// SuggestTag returns the known tag closest to tag, if one is near enough to
// be a likely typo. Comparison ignores case.
func SuggestTag(tag string, known []string) (string, bool) {
	needle := strings.ToLower(tag)
	if needle == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, cand := range known {
		c := strings.ToLower(cand)
		dist := levenshtein.ComputeDistance(needle, c)
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
