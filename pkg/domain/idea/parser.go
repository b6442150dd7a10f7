// Package idea extracts short candidate statements ("ideas") from text
// produced by a language model.
package idea

import (
	"strings"
	"unicode/utf8"
)

// FallbackPolicy decides what Parse returns when the text has no bullet lines.
type FallbackPolicy int

const (
	// FallbackWholeText returns the whole trimmed text as the only idea.
	FallbackWholeText FallbackPolicy = iota
	// FallbackSentenceSplit splits the text on periods and keeps long fragments.
	FallbackSentenceSplit
)

const (
	bulletMarker = "-"
	// fragments must be strictly longer than this many characters to survive
	// the sentence-split fallback.
	minFragmentLength = 10
)

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackWholeText:
		return "whole_text"
	case FallbackSentenceSplit:
		return "sentence_split"
	default:
		return "unknown"
	}
}

// ParseBullets returns the lines of text that start with a "-" marker, with the
// marker and surrounding spaces removed. Lines left empty are dropped.
func ParseBullets(text string) []string {
	var ideas []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), bulletMarker) {
			continue
		}
		item := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- "))
		if item == "" {
			continue
		}
		ideas = append(ideas, item)
	}
	return ideas
}

// Parse extracts bullet ideas from text and applies policy when none are found.
func Parse(text string, policy FallbackPolicy) []string {
	if ideas := ParseBullets(text); len(ideas) > 0 {
		return ideas
	}
	switch policy {
	case FallbackSentenceSplit:
		return SplitSentences(text)
	default:
		return []string{strings.TrimSpace(text)}
	}
}

// SplitSentences splits text on periods and keeps the trimmed fragments that
// are longer than ten characters.
func SplitSentences(text string) []string {
	fragments := make([]string, 0)
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minFragmentLength {
			fragments = append(fragments, s)
		}
	}
	return fragments
}

// Filter drops empty and whitespace-only ideas, preserving order.
func Filter(ideas []string) []string {
	valid := make([]string, 0, len(ideas))
	for _, i := range ideas {
		if strings.TrimSpace(i) == "" {
			continue
		}
		valid = append(valid, i)
	}
	return valid
}
