package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-match/api/http/presenter"
	"github.com/artem13815/resume-match/pkg/analysis"
	"github.com/artem13815/resume-match/pkg/resume"
)

type MatchHandler struct {
	uc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewMatchHandler(uc analysis.UseCase, maxBytes int64) *MatchHandler {
	return &MatchHandler{uc: uc, maxBytes: maxBytes}
}

type analyzeRequest struct {
	ResumeText string `json:"resumeText"`
	JobText    string `json:"jobText"`
}

// Analyze сопоставляет текст резюме с текстом вакансии и возвращает
// объяснимый результат: балл, навыки, оценку опыта и рекомендации.
// @Summary Анализ соответствия резюме и вакансии
// @Description Принимает два plain-текста и возвращает балл 0-100, совпавшие/недостающие навыки и рекомендации. Пустые тексты — валидный вход.
// @Tags    Сопоставление
// @Accept  json
// @Produce json
// @Param   input body analyzeRequest true "Тексты резюме и вакансии"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /match/analyze [post]
func (h *MatchHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	res := h.uc.Analyze(c.Context(), req.ResumeText, req.JobText)
	return presenter.JSON(c, http.StatusOK, res)
}

type uploadMatchResponse struct {
	analysis.Result
	ExtractedText string `json:"extractedText"`
}

// Upload принимает файл резюме (PDF/DOCX) и текст вакансии, извлекает текст
// и прогоняет его через тот же анализ, что и /match/analyze.
// @Summary Загрузка резюме и анализ соответствия вакансии
// @Tags    Сопоставление
// @Accept  multipart/form-data
// @Produce json
// @Param   file    formData file   true "Файл резюме (PDF или DOCX)"
// @Param   jobText formData string true "Текст вакансии"
// @Success 200 {object} uploadMatchResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /match/upload [post]
func (h *MatchHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	if !resume.Supported(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ExtractText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}

	res := h.uc.Analyze(c.Context(), text, c.FormValue("jobText"))
	return presenter.JSON(c, http.StatusOK, uploadMatchResponse{Result: res, ExtractedText: text})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
