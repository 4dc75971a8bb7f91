package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dogs-api/internal/middleware"
	"dogs-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// HandlerOptions controla el contrato HTTP.
//
// StrictHTTP=false (default) mantiene el contrato histórico:
// not found => 204 {"status":204}, PATCH => 201, escritura fallida => 201 null.
// StrictHTTP=true usa 404 / 200 y mapea el motivo del fallo a un status.
type HandlerOptions struct {
	StrictHTTP bool
	Log        logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	h := &handler{svc: svc, strict: opts.StrictHTTP, log: opts.Log}

	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", h.list)
		dr.Post("/", h.create)

		dr.Get("/{id}", h.show)
		dr.Delete("/{id}", h.delete)
		dr.Patch("/{id}", h.update)
	})
}

type handler struct {
	svc    *Service
	strict bool
	log    logger.Logger
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []string `json:"errors"`
}

type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// list godoc
//
//	@Summary	List dogs
//	@Tags		dogs
//	@Produce	json
//	@Success	200	{array}	Dog
//	@Router		/dogs [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// show godoc
//
//	@Summary	Get a dog by id
//	@Tags		dogs
//	@Produce	json
//	@Param		id	path		int	true	"Dog id"
//	@Success	200	{object}	Dog
//	@Success	204	{object}	statusResponse
//	@Failure	400	{object}	messageResponse
//	@Router		/dogs/{id} [get]
func (h *handler) show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// delete godoc
//
//	@Summary	Delete a dog
//	@Tags		dogs
//	@Produce	json
//	@Param		id	path		int	true	"Dog id"
//	@Success	200	{object}	Dog	"snapshot of the deleted record"
//	@Success	204	{object}	statusResponse
//	@Failure	400	{object}	messageResponse
//	@Router		/dogs/{id} [delete]
func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// create godoc
//
//	@Summary	Create a dog
//	@Tags		dogs
//	@Accept		json
//	@Produce	json
//	@Param		dog	body		createDogRequest	true	"name, breed, age, description"
//	@Success	201	{object}	Dog
//	@Failure	400	{object}	errorsResponse
//	@Router		/dogs [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBody(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
		return
	}

	errs := append(invalidKeyErrors(b), fieldTypeErrors(b)...)
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	in, err := createInput(b)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
		return
	}

	h.writeResult(w, r, h.svc.Create(r.Context(), in), http.StatusCreated)
}

// createDogRequest solo documenta el body de POST /dogs; el handler
// valida sobre el JSON crudo.
type createDogRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Age         float64 `json:"age"`
	Description string  `json:"description"`
}

// update godoc
//
//	@Summary	Partially update a dog
//	@Tags		dogs
//	@Accept		json
//	@Produce	json
//	@Param		id	path		int					true	"Dog id"
//	@Param		dog	body		createDogRequest	false	"any subset of name, breed, age, description"
//	@Success	201	{object}	Dog
//	@Failure	400	{object}	errorsResponse
//	@Router		/dogs/{id} [patch]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	b, err := decodeBody(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
		return
	}

	if errs := invalidKeyErrors(b); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	status := http.StatusCreated
	if h.strict {
		status = http.StatusOK
	}

	p, err := patchFromBody(b)
	if err != nil {
		h.writeResult(w, r, Failed(err), status)
		return
	}

	h.writeResult(w, r, h.svc.Update(r.Context(), id, p), status)
}

func (h *handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "id should be a number"})
		return 0, false
	}
	return id, true
}

// notFound: net/http no transmite body en un 204, pero lo escribimos igual
// para que el contrato quede explícito en el código.
func (h *handler) notFound(w http.ResponseWriter) {
	if h.strict {
		writeJSON(w, http.StatusNotFound, statusResponse{Status: http.StatusNotFound, Message: "dog not found"})
		return
	}
	writeJSON(w, http.StatusNoContent, statusResponse{Status: http.StatusNoContent})
}

func (h *handler) writeResult(w http.ResponseWriter, r *http.Request, res WriteResult, status int) {
	if res.OK() {
		writeJSON(w, status, res.Dog)
		return
	}

	h.log.Warn("dog write failed", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"reason":     string(res.Reason),
		"error":      res.Err,
	})

	if !h.strict {
		writeJSON(w, status, nil)
		return
	}

	switch res.Reason {
	case ReasonNotFound:
		writeJSON(w, http.StatusNotFound, statusResponse{Status: http.StatusNotFound, Message: "dog not found"})
	case ReasonRejected:
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: res.Err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: http.StatusText(http.StatusInternalServerError)})
	}
}

func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("dog store error", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"error":      err,
	})
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: http.StatusText(http.StatusInternalServerError)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
