package http

import (
	"net/http"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

type AuthorsHandler struct {
	AuthorService *service.AuthorService
}

func authorInput(req shelfsdk.AuthorRequest) service.AuthorInput {
	return service.AuthorInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		Image:       req.Image,
	}
}

// HandleList pages through authors
//
//	@Summary		List authors
//	@Tags			Authors
//	@Produce		json
//	@Param			page	query		int									false	"page number"	default(1)
//	@Param			limit	query		int									false	"page size"		default(2)	maximum(100)
//	@Success		200		{object}	shelfsdk.Response[[]shelfsdk.Author]	"authors"
//	@Failure		401		{object}	shelfsdk.Response[any]					"missing or invalid token"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/authors [get]
func (h *AuthorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	authors, err := h.AuthorService.ListAuthors(r.Context(), domain.ParsePage(q.Get("page"), q.Get("limit")))
	if err != nil {
		writeError(w, r, err, MsgAuthorNotFound)
		return
	}
	writeData(w, http.StatusOK, "", mapSlice(authors, toAuthor))
}

// HandleGet fetches one author
//
//	@Summary		Get author
//	@Tags			Authors
//	@Produce		json
//	@Param			id	path		string								true	"author id"
//	@Success		200	{object}	shelfsdk.Response[shelfsdk.Author]	"author"
//	@Failure		404	{object}	shelfsdk.Response[any]				"Author not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/authors/{id} [get]
func (h *AuthorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.AuthorService.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, MsgAuthorNotFound)
		return
	}
	writeData(w, http.StatusOK, "", toAuthor(a))
}

// HandleCreate adds an author
//
//	@Summary		Create author
//	@Tags			Authors
//	@Accept			json
//	@Produce		json
//	@Param			body	body		shelfsdk.AuthorRequest				true	"author"
//	@Success		201		{object}	shelfsdk.Response[shelfsdk.Author]	"created author"
//	@Failure		400		{object}	shelfsdk.Response[any]				"validation failed"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/authors [post]
func (h *AuthorsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.AuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := h.AuthorService.CreateAuthor(r.Context(), authorInput(req))
	if err != nil {
		writeError(w, r, err, MsgAuthorNotFound)
		return
	}
	writeData(w, http.StatusCreated, "Author created", toAuthor(a))
}

// HandleUpdate replaces an author
//
//	@Summary		Update author
//	@Tags			Authors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"author id"
//	@Param			body	body		shelfsdk.AuthorRequest				true	"author"
//	@Success		200		{object}	shelfsdk.Response[shelfsdk.Author]	"updated author"
//	@Failure		400		{object}	shelfsdk.Response[any]				"validation failed"
//	@Failure		404		{object}	shelfsdk.Response[any]				"Author not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/authors/{id} [put]
func (h *AuthorsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.AuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := h.AuthorService.UpdateAuthor(r.Context(), r.PathValue("id"), authorInput(req))
	if err != nil {
		writeError(w, r, err, MsgAuthorNotFound)
		return
	}
	writeData(w, http.StatusOK, "Author updated", toAuthor(a))
}

// HandleDelete removes an author with no books
//
//	@Summary		Delete author
//	@Description	Refused with 409 while any book references the author.
//	@Tags			Authors
//	@Produce		json
//	@Param			id	path		string					true	"author id"
//	@Success		200	{object}	shelfsdk.Response[any]	"Author deleted"
//	@Failure		404	{object}	shelfsdk.Response[any]	"Author not found"
//	@Failure		409	{object}	shelfsdk.Response[any]	"author still has books"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/authors/{id} [delete]
func (h *AuthorsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthorService.DeleteAuthor(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, MsgAuthorNotFound)
		return
	}
	writeData(w, http.StatusOK, "Author deleted", nil)
}
