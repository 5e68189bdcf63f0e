package handlers_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/artem13815/resume-match/api/http"
	"github.com/artem13815/resume-match/api/http/handlers"
	"github.com/artem13815/resume-match/pkg/analysis"
	"github.com/artem13815/resume-match/pkg/health"
	"github.com/artem13815/resume-match/pkg/health/checkers"
	"github.com/artem13815/resume-match/pkg/nlp"
	"github.com/artem13815/resume-match/pkg/vocabulary"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	an, err := nlp.NewAnalyzer()
	require.NoError(t, err)
	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	svc := analysis.NewService(an, analysis.NewExtractor(an, vocab), analysis.Weights{
		Skill:                    0.7,
		Similarity:               0.3,
		ExperiencePenaltyPerYear: 5,
		ExperiencePenaltyMax:     15,
	}, nil, "")
	healthSvc := health.NewService(
		checkers.NewVocabularyChecker(vocab),
		checkers.NewAnalyzerChecker(an),
	)

	app := fiber.New()
	httpapi.Register(app,
		handlers.NewHealthHandler(healthSvc),
		handlers.NewMatchHandler(svc, 1<<20),
		handlers.NewResumeHandler(1<<20),
	)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestAnalyzeEndpoint(t *testing.T) {
	app := newTestApp(t)

	payload := `{"resumeText":"5 years experience in Python, SQL and AWS","jobText":"Python, SQL, and Docker, 3+ years required"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res analysis.Result
	decodeBody(t, resp, &res)
	assert.Equal(t, []string{"python", "sql"}, res.MatchedSkills)
	assert.Equal(t, []string{"docker"}, res.MissingSkills)
	assert.Equal(t, []string{"aws"}, res.ExtraSkills)
	assert.Equal(t, 66.67, res.SkillMatchPercent)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestAnalyzeEndpointEmptyTexts(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/analyze", strings.NewReader(`{"resumeText":"","jobText":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	// empty texts are valid input, not an error
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res analysis.Result
	decodeBody(t, resp, &res)
	assert.Equal(t, 100.0, res.SkillMatchPercent)
	assert.Empty(t, res.MissingSkills)
}

func TestAnalyzeEndpointInvalidJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/analyze", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &errResp)
	assert.NotEmpty(t, errResp.Message)
}

func buildDocx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func multipartBody(t *testing.T, filename string, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(file)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadEndpoint(t *testing.T) {
	app := newTestApp(t)

	docx := buildDocx(t, "Python and SQL developer, 4 years of experience")
	body, contentType := multipartBody(t, "resume.docx", docx, map[string]string{
		"jobText": "Python, SQL and Docker required",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		analysis.Result
		ExtractedText string `json:"extractedText"`
	}
	decodeBody(t, resp, &res)
	assert.Contains(t, res.ExtractedText, "Python and SQL developer")
	assert.Equal(t, []string{"python", "sql"}, res.MatchedSkills)
	assert.Equal(t, []string{"docker"}, res.MissingSkills)
}

func TestUploadEndpointUnsupportedFormat(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "resume.txt", []byte("plain text"), map[string]string{"jobText": "Python"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadEndpointMissingFile(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("jobText", "Python"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEndpoint(t *testing.T) {
	app := newTestApp(t)

	docx := buildDocx(t, "Go developer with Kubernetes")
	body, contentType := multipartBody(t, "resume.docx", docx, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Filename      string `json:"filename"`
		SizeB         int    `json:"sizeB"`
		ExtractedText string `json:"extractedText"`
	}
	decodeBody(t, resp, &res)
	assert.Equal(t, "resume.docx", res.Filename)
	assert.Greater(t, res.SizeB, 0)
	assert.Contains(t, res.ExtractedText, "Go developer with Kubernetes")
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/health", "/api/v1/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
