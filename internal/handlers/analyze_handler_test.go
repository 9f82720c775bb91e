package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentfit/resume-scorer/internal/models"
	"talentfit/resume-scorer/internal/services"
)

type fakeAnalyzer struct {
	lastJD      string
	lastWeights services.ScoreWeights
	results     []models.CandidateResult
}

func (f *fakeAnalyzer) AnalyzeBatch(_ context.Context, jd string, uploads []services.ResumeUpload, weights services.ScoreWeights) []models.CandidateResult {
	f.lastJD = jd
	f.lastWeights = weights
	if f.results != nil {
		return f.results
	}

	results := make([]models.CandidateResult, 0, len(uploads))
	for i, u := range uploads {
		results = append(results, models.CandidateResult{
			ID:            i,
			Filename:      u.Filename,
			Score:         50,
			FoundSkills:   []string{},
			MissingSkills: []string{},
		})
	}
	return results
}

func newAnalyzeApp(analyzer services.AnalyzerService) *fiber.App {
	app := fiber.New()
	handler := NewAnalyzeHandler(
		analyzer,
		services.NewTextExtractor(),
		services.NewAuthService("secret"),
		nil,
		services.ScoreWeights{Keyword: 0.5, Semantic: 0.5},
	)
	app.Post("/analyze", handler.HandleAnalyze)
	return app
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleAnalyze_OK(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newAnalyzeApp(analyzer)

	body, contentType := multipartBody(t,
		map[string]string{
			"job_description": "Looking for a Go engineer",
			"keyword_weight":  "0.4",
			"semantic_weight": "0.6",
		},
		map[string]string{"resume.txt": "Go developer"},
	)

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed models.AnalyzeResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	require.Len(t, parsed.Results, 1)
	assert.Equal(t, "resume.txt", parsed.Results[0].Filename)

	assert.Equal(t, "Looking for a Go engineer", analyzer.lastJD)
	assert.Equal(t, services.ScoreWeights{Keyword: 0.4, Semantic: 0.6}, analyzer.lastWeights)
}

func TestHandleAnalyze_MissingJobDescription(t *testing.T) {
	app := newAnalyzeApp(&fakeAnalyzer{})

	body, contentType := multipartBody(t, nil, map[string]string{"resume.txt": "Go developer"})

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_NoResumes(t *testing.T) {
	app := newAnalyzeApp(&fakeAnalyzer{})

	body, contentType := multipartBody(t, map[string]string{"job_description": "a job"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_BadWeightsFallBackToDefaults(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newAnalyzeApp(analyzer)

	body, contentType := multipartBody(t,
		map[string]string{
			"job_description": "a job",
			"keyword_weight":  "not-a-number",
			"semantic_weight": "0.6",
		},
		map[string]string{"resume.txt": "text"},
	)

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, services.ScoreWeights{Keyword: 0.5, Semantic: 0.5}, analyzer.lastWeights)
}

func TestHandleAnalyze_JDFileTakesPrecedence(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newAnalyzeApp(analyzer)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("job_description", "ignored text"))

	fw, err := w.CreateFormFile("jd_file", "jd.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("the real job description"))
	require.NoError(t, err)

	rw, err := w.CreateFormFile("files", "resume.txt")
	require.NoError(t, err)
	_, err = rw.Write([]byte("a resume"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "the real job description", analyzer.lastJD)
}
