package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/resume"
)

type ParseHandler struct {
	svc resume.DocumentService
}

func NewParseHandler(svc resume.DocumentService) *ParseHandler {
	return &ParseHandler{svc: svc}
}

type parseRequest struct {
	FileKey string `json:"file_key"`
}

// Parse скачивает документ из бакета по ключу и возвращает структурированное резюме.
// @Summary Разбор резюме
// @Description Принимает ключ объекта (PDF или DOCX) в бакете, извлекает текст и ссылки и возвращает запись резюме.
// @Tags    Резюме
// @Accept  json
// @Produce json
// @Param   body body parseRequest true "Ключ файла в бакете"
// @Security BearerAuth
// @Success 200 {object} resume.Record
// @Failure 400 {object} presenter.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} presenter.ErrorResponse "Файл не найден"
// @Failure 415 {object} presenter.ErrorResponse "Неподдерживаемый формат"
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /parse [post]
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	req.FileKey = strings.TrimSpace(req.FileKey)
	if req.FileKey == "" {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrEmptyKey.Error())
	}
	res, err := h.svc.ParseDocument(c.UserContext(), req.FileKey)
	if err != nil {
		status, msg := classifyError(err)
		return presenter.Error(c, status, msg)
	}
	c.Set("X-Result-Id", res.ID.String())
	return presenter.PrettyJSON(c, http.StatusOK, res.Record)
}

// classifyError maps use-case errors to an HTTP status and a client-facing message.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, resume.ErrEmptyKey):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, resume.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, resume.ErrUnsupportedType.Error()
	case errors.Is(err, resume.ErrDocumentNotFound), errors.Is(err, resume.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, resume.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, resume.ErrStorageUnavailable):
		return http.StatusInternalServerError, "could not connect to object storage"
	default:
		return http.StatusInternalServerError, "an internal error occurred while processing the file"
	}
}
