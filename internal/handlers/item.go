package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"lostfound/internal/imaging"
	"lostfound/internal/logger"
	"lostfound/internal/middleware"
	"lostfound/internal/models"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"

	"go.uber.org/zap"
)

// maxFormBytes bounds a multipart form: the photo plus the text fields.
const maxFormBytes = imaging.MaxUploadBytes + 1<<20

type ItemHandler struct {
	items *services.ItemService
}

func NewItemHandler(items *services.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// RegisterFound godoc
// @Summary Register a found item
// @Description Multipart form. The optional photo (JPEG or PNG, up to 10 MB) is resized and stored under /uploads/.
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Item name"
// @Param description formData string true "Description"
// @Param category formData string true "clothing, electronics, documents or other"
// @Param location formData string true "Where it was found"
// @Param date formData string true "YYYY-MM-DD"
// @Param photo formData file false "Photo"
// @Success 201 {object} helpers.Response{data=models.Item}
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Router /api/registrar-encontrado [post]
func (h *ItemHandler) RegisterFound(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			helpers.Error(w, http.StatusBadRequest, "A imagem deve ter no máximo 10 MB.")
			return
		}
		helpers.Error(w, http.StatusBadRequest, "Formulário inválido.")
		return
	}
	defer r.MultipartForm.RemoveAll()

	in := models.ItemInput{
		Name:        firstNonEmpty(r.FormValue("name"), r.FormValue("nome_item")),
		Description: firstNonEmpty(r.FormValue("description"), r.FormValue("descricao")),
		Category:    firstNonEmpty(r.FormValue("category"), r.FormValue("categoria")),
		Location:    firstNonEmpty(r.FormValue("location"), r.FormValue("local")),
		Date:        firstNonEmpty(r.FormValue("date"), r.FormValue("data")),
	}

	photo, err := formFile(r, "photo", "foto")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Falha ao ler a imagem enviada.")
		return
	}
	var photoReader io.Reader
	if photo != nil {
		defer photo.Close()
		photoReader = photo
	}

	item, err := h.items.Register(r.Context(), middleware.Identity(r), in, photoReader)
	if err != nil {
		writeError(w, r, err, "Erro ao registrar item. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusCreated, "Item registrado com sucesso!", item)
}

// formFile returns the first uploaded file among names, or nil if none was sent.
func formFile(r *http.Request, names ...string) (multipart.File, error) {
	for _, name := range names {
		f, _, err := r.FormFile(name)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, nil
}

// Search godoc
// @Summary Search unclaimed items
// @Tags items
// @Produce json
// @Param term query string false "Matches name or description"
// @Param category query string false "all, clothing, electronics, documents or other"
// @Param location query string false "Location"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} helpers.Response{data=[]models.Item}
// @Failure 400 {object} helpers.Response
// @Router /api/buscar [get]
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.items.Search(r.Context(), services.SearchParams{
		Term:     firstNonEmpty(q.Get("term"), q.Get("termo")),
		Category: firstNonEmpty(q.Get("category"), q.Get("categoria")),
		Location: firstNonEmpty(q.Get("location"), q.Get("local")),
		Date:     firstNonEmpty(q.Get("date"), q.Get("data")),
	})
	if err != nil {
		writeError(w, r, err, "Erro ao buscar itens.")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	helpers.Success(w, http.StatusOK, "", items)
}

// ListAll godoc
// @Summary List every registered item
// @Tags items
// @Produce json
// @Success 200 {object} helpers.Response{data=[]models.Item}
// @Router /api/itens-encontrados [get]
func (h *ItemHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err, "Erro ao buscar itens.")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	helpers.Success(w, http.StatusOK, "", items)
}

// Remove godoc
// @Summary Delete an item
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/remover-item/{itemId} [delete]
func (h *ItemHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "itemId")
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "ID de item inválido.")
		return
	}
	if err := h.items.Remove(r.Context(), id, middleware.Identity(r)); err != nil {
		writeError(w, r, err, "Erro ao remover item.")
		return
	}
	logger.WithCtx(r.Context()).Info("Item removed", zap.Int64("item_id", id))
	helpers.Success(w, http.StatusOK, "Item removido com sucesso!", nil)
}

// MarkReturned godoc
// @Summary Mark a claimed item as returned
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} helpers.Response{data=models.Item}
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /api/admin/itens/{itemId}/devolvido [post]
func (h *ItemHandler) MarkReturned(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "itemId")
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "ID de item inválido.")
		return
	}
	item, err := h.items.MarkReturned(r.Context(), id, middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao registrar devolução.")
		return
	}
	helpers.Success(w, http.StatusOK, "Item marcado como devolvido.", item)
}

// ListReturned godoc
// @Summary Returned items history
// @Tags items
// @Produce json
// @Success 200 {object} helpers.Response{data=[]models.ReturnedItem}
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/itens-devolvidos [get]
func (h *ItemHandler) ListReturned(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListReturned(r.Context(), middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao buscar itens devolvidos.")
		return
	}
	if items == nil {
		items = []models.ReturnedItem{}
	}
	helpers.Success(w, http.StatusOK, "", items)
}
