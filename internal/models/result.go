package models

// SimilarityResult is the output of one similarity estimator. Score is
// always set; when an estimator degrades (provider outage, vocabulary
// collapse) it returns a defined fallback score and Degraded is true so
// callers can tell a fallback from a genuine low score.
type SimilarityResult struct {
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_keywords,omitempty"`
	MissingTerms []string `json:"missing_keywords,omitempty"`
	Degraded     bool     `json:"degraded,omitempty"`
}

type ScoreBreakdown struct {
	Keyword  SimilarityResult `json:"keyword"`
	Semantic SimilarityResult `json:"semantic"`
}

// CandidateResult is one resume's evaluation against one job description.
type CandidateResult struct {
	ID            int            `json:"id"`
	Filename      string         `json:"filename"`
	Score         float64        `json:"score"`
	Email         string         `json:"email,omitempty"`
	FoundSkills   []string       `json:"found_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	AISummary     string         `json:"ai_summary,omitempty"`
	Error         string         `json:"error,omitempty"`
}

type AnalyzeResponse struct {
	Results []CandidateResult `json:"results"`
}

type GenerateEmailRequest struct {
	CandidateName    string   `json:"candidate_name"`
	JobTitle         string   `json:"job_title"`
	MissingSkills    []string `json:"missing_skills"`
	SignatureName    string   `json:"signature_name,omitempty"`
	SignatureRole    string   `json:"signature_role,omitempty"`
	SignatureCompany string   `json:"signature_company,omitempty"`
}

type GeneratedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SimilarRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

type SimilarResume struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Score    float32 `json:"score"`
	Snippet  string  `json:"snippet"`
}

// SettingsRequest uses pointers so absent fields can be reset to the
// stored defaults, mirroring the allowlist upsert behavior.
type SettingsRequest struct {
	KeywordWeight    *float64 `json:"keyword_weight"`
	SemanticWeight   *float64 `json:"semantic_weight"`
	SignatureName    *string  `json:"signature_name"`
	SignatureRole    *string  `json:"signature_role"`
	SignatureCompany *string  `json:"signature_company"`
}
