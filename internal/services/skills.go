package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// DefaultSkillVocabulary is the fixed skill list matched against resume
// text. Entries keep their display casing; matching is case-insensitive.
var DefaultSkillVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Node.js", "Angular", "Vue",
	"SQL", "PostgreSQL", "MongoDB", "Redis", "MySQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "CI/CD",
	"Flask", "Django", "Spring Boot", "Express",
	"Machine Learning", "AI", "Data Science", "API", "REST", "GraphQL",
	"Git", "Agile", "Scrum", "Linux", "Bash",
}

type SkillExtractor interface {
	Extract(text string) (found []string, missing []string)
}

type skillExtractor struct {
	vocabulary []string
}

func NewSkillExtractor(vocabulary []string) SkillExtractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultSkillVocabulary
	}
	return &skillExtractor{vocabulary: vocabulary}
}

// Extract matches each vocabulary entry against the text. Matching is
// boundary-aware: an entry whose edge is alphanumeric must not sit inside
// a longer alphanumeric run, so "Java" does not match "JavaScript".
// Returned slices are sorted alphabetically.
func (s *skillExtractor) Extract(text string) ([]string, []string) {
	textLower := strings.ToLower(text)

	found := []string{}
	missing := []string{}
	for _, skill := range s.vocabulary {
		if containsSkill(textLower, strings.ToLower(skill)) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	sort.Strings(found)
	sort.Strings(missing)
	return found, missing
}

func containsSkill(textLower, skillLower string) bool {
	for start := 0; ; {
		idx := strings.Index(textLower[start:], skillLower)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryOK(textLower, idx, skillLower) {
			return true
		}
		start = idx + 1
	}
}

// boundaryOK rejects a match whose alphanumeric edge continues into the
// surrounding text. Edges that are symbols ("C++", "CI/CD") only need the
// literal occurrence.
func boundaryOK(text string, idx int, skill string) bool {
	first := rune(skill[0])
	last := rune(skill[len(skill)-1])

	if isWordRune(first) && idx > 0 && isWordRune(rune(text[idx-1])) {
		return false
	}
	end := idx + len(skill)
	if isWordRune(last) && end < len(text) && isWordRune(rune(text[end])) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// ParseEmail returns the first email-looking substring, or "". Purely
// pattern extraction, not address validation.
func ParseEmail(text string) string {
	return emailPattern.FindString(text)
}
