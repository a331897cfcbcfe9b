// Package fuzzy implements the approximate substring matching used by
// list-view search boxes. It tolerates a bounded number of character
// edits so partial or misspelled queries still hit.
package fuzzy

import "strings"

// minTermLen is the shortest term eligible for approximate matching.
// Shorter tokens only match as exact substrings, otherwise two- and
// three-letter queries light up half the list.
const minTermLen = 4

// Match reports whether term approximately matches somewhere inside
// target. An exact case-folded substring always matches. Longer terms
// tolerate one typo up to five characters, two beyond that.
func Match(term, target string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	target = strings.ToLower(target)
	if term == "" {
		return true
	}
	if strings.Contains(target, term) {
		return true
	}

	t := []rune(term)
	if len(t) < minTermLen {
		return false
	}

	maxTypos := 2
	if len(t) <= 5 {
		maxTypos = 1
	}

	// Brute-force windowed scan: every substring of target whose length
	// is within term length +/- maxTypos. Quadratic in target length,
	// fine for names.
	g := []rune(target)
	minLen := len(t) - maxTypos
	maxLen := len(t) + maxTypos
	if minLen < 1 {
		minLen = 1
	}
	for start := 0; start < len(g); start++ {
		for length := minLen; length <= maxLen && start+length <= len(g); length++ {
			if levenshtein(g[start:start+length], t) <= maxTypos {
				return true
			}
		}
	}
	return false
}

// MatchAll splits query on whitespace and requires every token to
// independently Match the target.
func MatchAll(query, target string) bool {
	for _, term := range strings.Fields(query) {
		if !Match(term, target) {
			return false
		}
	}
	return true
}

// levenshtein computes the edit distance between two rune slices using
// a two-row rolling table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
