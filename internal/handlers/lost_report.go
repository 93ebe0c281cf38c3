package handlers

import (
	"errors"
	"net/http"

	"lostfound/internal/middleware"
	"lostfound/internal/models"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"
)

type LostReportHandler struct {
	reports *services.LostReportService
}

func NewLostReportHandler(reports *services.LostReportService) *LostReportHandler {
	return &LostReportHandler{reports: reports}
}

// Report godoc
// @Summary Report a lost item
// @Description Accepts JSON or a multipart/urlencoded form with the same fields.
// @Tags lost
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param input body models.LostReportInput true "Lost item"
// @Success 201 {object} helpers.Response{data=models.LostReport}
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Router /api/registrar-perdido [post]
func (h *LostReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	var in models.LostReportInput
	if helpers.IsJSON(r) {
		if err := helpers.DecodeJSON(r, &in); err != nil {
			helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			helpers.Error(w, http.StatusBadRequest, "Formulário inválido.")
			return
		}
		in = models.LostReportInput{
			Name:          firstNonEmpty(r.FormValue("name"), r.FormValue("nome_item")),
			Description:   firstNonEmpty(r.FormValue("description"), r.FormValue("descricao")),
			Category:      firstNonEmpty(r.FormValue("category"), r.FormValue("categoria")),
			Location:      firstNonEmpty(r.FormValue("location"), r.FormValue("local")),
			Date:          firstNonEmpty(r.FormValue("date"), r.FormValue("data")),
			Color:         firstNonEmpty(r.FormValue("color"), r.FormValue("cor")),
			Brand:         firstNonEmpty(r.FormValue("brand"), r.FormValue("marca")),
			UniqueFeature: firstNonEmpty(r.FormValue("uniqueFeature"), r.FormValue("caracteristica_unica")),
		}
	}

	report, err := h.reports.Report(r.Context(), middleware.Identity(r), in)
	if err != nil {
		writeError(w, r, err, "Erro ao registrar item perdido.")
		return
	}
	helpers.Success(w, http.StatusCreated, "Item perdido registrado com sucesso!", report)
}

// List godoc
// @Summary Lost item reports
// @Tags lost
// @Produce json
// @Success 200 {object} helpers.Response{data=[]models.LostReport}
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/perdidos [get]
func (h *LostReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.List(r.Context(), middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao buscar itens perdidos.")
		return
	}
	if reports == nil {
		reports = []models.LostReport{}
	}
	helpers.Success(w, http.StatusOK, "", reports)
}
