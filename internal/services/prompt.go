package services

import (
	"fmt"
	"strings"

	"talentfit/resume-scorer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt creates the per-candidate summary prompt. The job
// description is truncated to keep prompt size bounded.
func (pb *PromptBuilder) BuildSummaryPrompt(jdText string, candidate models.CandidateResult) string {
	jd := jdText
	if len(jd) > 300 {
		jd = jd[:300] + "..."
	}

	skills := candidate.FoundSkills
	if len(skills) > 5 {
		skills = skills[:5]
	}

	return fmt.Sprintf(`Analyze this candidate for the job.
Job: %s
Candidate Score: %.2f%%
Skills: %s

Provide a 2 sentence professional summary and a Recommendation (Strong/Good/Weak Match).`,
		jd, candidate.Score, strings.Join(skills, ", "))
}

// BuildRecruitingEmailPrompt creates the outreach email prompt. The model
// must answer with a JSON object holding subject and body.
func (pb *PromptBuilder) BuildRecruitingEmailPrompt(req models.GenerateEmailRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Write a recruiting email to %s for the %s position.
Mention these missing skills as growth areas: %s.
`, req.CandidateName, req.JobTitle, strings.Join(req.MissingSkills, ", "))

	if req.SignatureName != "" {
		fmt.Fprintf(&b, "Sign the email as %s", req.SignatureName)
		if req.SignatureRole != "" {
			fmt.Fprintf(&b, ", %s", req.SignatureRole)
		}
		if req.SignatureCompany != "" {
			fmt.Fprintf(&b, " at %s", req.SignatureCompany)
		}
		b.WriteString(".\n")
	}

	b.WriteString(`Return ONLY valid JSON: {"subject": "...", "body": "..."}`)
	return b.String()
}

// ExtractJSON pulls a JSON object or array out of text that may wrap it in
// markdown fences or prose.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
