package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/resume"
)

type ResultsHandler struct {
	svc resume.DocumentService
}

func NewResultsHandler(svc resume.DocumentService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// List возвращает сохранённые результаты разбора, новые первыми.
// @Summary Список результатов разбора
// @Tags    Резюме
// @Produce json
// @Param   limit  query int false "Размер страницы (1..100)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /results [get]
func (h *ResultsHandler) List(c *fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.svc.Results(c.UserContext(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list results")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// Get возвращает один результат по идентификатору.
// @Summary Результат разбора
// @Tags    Резюме
// @Produce json
// @Param   id path string true "ID результата"
// @Security BearerAuth
// @Success 200 {object} resume.ParseResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /results/{id} [get]
func (h *ResultsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.Result(c.UserContext(), id)
	if err != nil {
		status, msg := classifyError(err)
		if status == http.StatusNotFound {
			msg = "result not found"
		}
		return presenter.Error(c, status, msg)
	}
	return presenter.JSON(c, http.StatusOK, res)
}
