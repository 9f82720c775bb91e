package services

import (
	"log"
	"math"
	"sort"
	"strings"
	"unicode"

	"talentfit/resume-scorer/internal/models"
)

const (
	maxVocabularyTerms = 100
	matchedTermsLimit  = 10
	missingTermsLimit  = 5
)

// KeywordScorer computes lexical overlap between a resume and a job
// description. The two documents form the entire TF-IDF corpus: unigrams
// and bigrams, stop words removed, vocabulary capped at the most frequent
// terms, cosine similarity scaled to 0-100.
type KeywordScorer interface {
	Estimate(resumeText, jdText string) models.SimilarityResult
}

type keywordScorer struct{}

func NewKeywordScorer() KeywordScorer {
	return &keywordScorer{}
}

// Estimate never fails: an empty document or a vocabulary that collapses
// after stop-word removal yields a zero score with empty term lists.
func (k *keywordScorer) Estimate(resumeText, jdText string) models.SimilarityResult {
	empty := models.SimilarityResult{
		Score:        0.0,
		MatchedTerms: []string{},
		MissingTerms: []string{},
	}

	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return empty
	}

	resumeCounts := ngramCounts(tokenize(resumeText))
	jdCounts := ngramCounts(tokenize(jdText))

	vocabulary := topTerms(resumeCounts, jdCounts, maxVocabularyTerms)
	if len(vocabulary) == 0 {
		log.Println("⚠️  Keyword scoring: vocabulary collapsed after stop-word removal")
		return empty
	}

	resumeVec := tfidfVector(vocabulary, resumeCounts, jdCounts)
	jdVec := tfidfVector(vocabulary, jdCounts, resumeCounts)

	var dot float64
	for i := range resumeVec {
		dot += resumeVec[i] * jdVec[i]
	}

	return models.SimilarityResult{
		Score:        round2(dot * 100),
		MatchedTerms: matchedTerms(vocabulary, resumeVec, jdVec),
		MissingTerms: missingTerms(vocabulary, resumeVec, jdVec),
	}
}

// tokenize lowercases the text and extracts alphanumeric runs of at least
// two characters, dropping stop words.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) >= 2 && !englishStopWords[w] {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// ngramCounts builds term frequencies for unigrams plus bigrams of
// adjacent surviving tokens.
func ngramCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens)*2)
	for _, t := range tokens {
		counts[t]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		counts[tokens[i]+" "+tokens[i+1]]++
	}
	return counts
}

// topTerms caps the vocabulary at the limit most frequent terms across the
// two-document corpus, ties broken alphabetically for determinism.
func topTerms(a, b map[string]int, limit int) []string {
	totals := make(map[string]int, len(a)+len(b))
	for t, c := range a {
		totals[t] += c
	}
	for t, c := range b {
		totals[t] += c
	}

	terms := make([]string, 0, len(totals))
	for t := range totals {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	sort.Strings(terms)
	return terms
}

// tfidfVector weights document counts by smoothed inverse document
// frequency over the two-document corpus and l2-normalizes the result.
func tfidfVector(vocabulary []string, doc, other map[string]int) []float64 {
	vec := make([]float64, len(vocabulary))
	var norm float64

	for i, term := range vocabulary {
		tf := float64(doc[term])
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		vec[i] = tf * idf
		norm += vec[i] * vec[i]
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// matchedTerms returns vocabulary terms weighted in both documents, ranked
// by combined weight, truncated.
func matchedTerms(vocabulary []string, resumeVec, jdVec []float64) []string {
	type weighted struct {
		term   string
		weight float64
	}
	var matched []weighted
	for i, term := range vocabulary {
		if resumeVec[i] > 0 && jdVec[i] > 0 {
			matched = append(matched, weighted{term, resumeVec[i] + jdVec[i]})
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].weight != matched[j].weight {
			return matched[i].weight > matched[j].weight
		}
		return matched[i].term < matched[j].term
	})

	terms := make([]string, 0, matchedTermsLimit)
	for _, m := range matched {
		if len(terms) == matchedTermsLimit {
			break
		}
		terms = append(terms, m.term)
	}
	return terms
}

// missingTerms returns vocabulary terms weighted in the job description but
// absent from the resume, ranked by job-description weight, truncated.
func missingTerms(vocabulary []string, resumeVec, jdVec []float64) []string {
	type weighted struct {
		term   string
		weight float64
	}
	var missing []weighted
	for i, term := range vocabulary {
		if jdVec[i] > 0 && resumeVec[i] == 0 {
			missing = append(missing, weighted{term, jdVec[i]})
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].weight != missing[j].weight {
			return missing[i].weight > missing[j].weight
		}
		return missing[i].term < missing[j].term
	})

	terms := make([]string, 0, missingTermsLimit)
	for _, m := range missing {
		if len(terms) == missingTermsLimit {
			break
		}
		terms = append(terms, m.term)
	}
	return terms
}
