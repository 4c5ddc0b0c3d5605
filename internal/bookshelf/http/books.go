package http

import (
	"net/http"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

type BooksHandler struct {
	BookService *service.BookService
}

func bookInput(req shelfsdk.BookRequest) service.BookInput {
	return service.BookInput{
		Title:       req.Title,
		AuthorID:    req.Author,
		Description: req.Description,
		Price:       req.Price,
		Cover:       req.Cover,
	}
}

// HandleList pages through books
//
//	@Summary		List books
//	@Description	Each book carries its author's id and name.
//	@Tags			Books
//	@Produce		json
//	@Param			page	query		int									false	"page number"	default(1)
//	@Param			limit	query		int									false	"page size"		default(2)	maximum(100)
//	@Success		200		{object}	shelfsdk.Response[[]shelfsdk.Book]	"books"
//	@Failure		401		{object}	shelfsdk.Response[any]				"missing or invalid token"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/books [get]
func (h *BooksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	books, err := h.BookService.ListBooks(r.Context(), domain.ParsePage(q.Get("page"), q.Get("limit")))
	if err != nil {
		writeError(w, r, err, MsgBookNotFound)
		return
	}
	writeData(w, http.StatusOK, "", mapSlice(books, toBook))
}

// HandleGet fetches one book
//
//	@Summary		Get book
//	@Tags			Books
//	@Produce		json
//	@Param			id	path		string							true	"book id"
//	@Success		200	{object}	shelfsdk.Response[shelfsdk.Book]	"book"
//	@Failure		404	{object}	shelfsdk.Response[any]			"Book not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/books/{id} [get]
func (h *BooksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	b, err := h.BookService.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, MsgBookNotFound)
		return
	}
	writeData(w, http.StatusOK, "", toBook(b))
}

// HandleCreate adds a book
//
//	@Summary		Create book
//	@Description	The author must already exist.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			body	body		shelfsdk.BookRequest				true	"book"
//	@Success		201		{object}	shelfsdk.Response[shelfsdk.Book]	"created book"
//	@Failure		400		{object}	shelfsdk.Response[any]			"validation failed or unknown author"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/books [post]
func (h *BooksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.BookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.BookService.CreateBook(r.Context(), bookInput(req))
	if err != nil {
		writeError(w, r, err, MsgBookNotFound)
		return
	}
	writeData(w, http.StatusCreated, "Book created", toBook(b))
}

// HandleUpdate replaces a book
//
//	@Summary		Update book
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"book id"
//	@Param			body	body		shelfsdk.BookRequest				true	"book"
//	@Success		200		{object}	shelfsdk.Response[shelfsdk.Book]	"updated book"
//	@Failure		400		{object}	shelfsdk.Response[any]			"validation failed or unknown author"
//	@Failure		404		{object}	shelfsdk.Response[any]			"Book not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/books/{id} [put]
func (h *BooksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.BookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.BookService.UpdateBook(r.Context(), r.PathValue("id"), bookInput(req))
	if err != nil {
		writeError(w, r, err, MsgBookNotFound)
		return
	}
	writeData(w, http.StatusOK, "Book updated", toBook(b))
}

// HandleDelete removes a book
//
//	@Summary		Delete book
//	@Tags			Books
//	@Produce		json
//	@Param			id	path		string					true	"book id"
//	@Success		200	{object}	shelfsdk.Response[any]	"Book deleted"
//	@Failure		404	{object}	shelfsdk.Response[any]	"Book not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/books/{id} [delete]
func (h *BooksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.BookService.DeleteBook(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, MsgBookNotFound)
		return
	}
	writeData(w, http.StatusOK, "Book deleted", nil)
}
