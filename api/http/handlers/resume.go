package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-match/api/http/presenter"
	"github.com/artem13815/resume-match/pkg/resume"
)

type ResumeHandler struct {
	maxBytes int64
}

func NewResumeHandler(maxBytes int64) *ResumeHandler {
	return &ResumeHandler{maxBytes: maxBytes}
}

// Extract извлекает plain-текст из загруженного резюме без анализа.
// Полезно для отладки качества извлечения.
// @Summary Извлечение текста из резюме
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/extract [post]
func (h *ResumeHandler) Extract(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"filename":      fh.Filename,
		"sizeB":         len(data),
		"extractedText": text,
	})
}
