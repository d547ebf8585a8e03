package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/reading-tracker/pkg/middleware"
	"github.com/Astemirdum/reading-tracker/pkg/validate"
	_ "github.com/Astemirdum/reading-tracker/swagger"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
)

type Handler struct {
	trackerSvc TrackerService
	log        *zap.Logger
}

func New(trackerSvc TrackerService, log *zap.Logger) *Handler {
	return &Handler{
		trackerSvc: trackerSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/catalog/search", h.SearchCatalog)
	api.GET("/catalog/volumes/:volumeId", h.CatalogDetails)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.AddBook)
	api.POST("/books/catalog/:volumeId", h.AddFromCatalog)
	api.GET("/books/:id", h.GetBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/books/:id/reading", h.ReadingPage)
	api.GET("/books/:id/sessions", h.ListSessions)
	api.POST("/books/:id/sessions", h.RecordSession)
	api.GET("/books/:id/review", h.GenerateReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// SearchCatalog godoc
// @Summary search the book catalog
// @Tags catalog
// @Param q query string true "title or ISBN"
// @Success 200 {array} model.CatalogVolume
// @Failure 400,502 {object} errs.ErrorResponse
// @Router /catalog/search [get]
func (h *Handler) SearchCatalog(c echo.Context) error {
	type Req struct {
		Query string `query:"q" json:"q" validate:"notblank"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validate.Message(err))
	}
	volumes, err := h.trackerSvc.SearchCatalog(c.Request().Context(), req.Query)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, volumes)
}

// CatalogDetails godoc
// @Summary catalog volume details
// @Tags catalog
// @Param volumeId path string true "catalog volume id"
// @Success 200 {object} model.CatalogDetails
// @Failure 502 {object} errs.ErrorResponse
// @Router /catalog/volumes/{volumeId} [get]
func (h *Handler) CatalogDetails(c echo.Context) error {
	details, err := h.trackerSvc.CatalogDetails(c.Request().Context(), c.Param("volumeId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// ListBooks godoc
// @Summary library overview
// @Tags books
// @Success 200 {array} model.BookOverview
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.trackerSvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// AddBook godoc
// @Summary add a book from catalog metadata
// @Tags books
// @Param book body model.CatalogMetadata true "metadata"
// @Success 201 {object} model.Book
// @Failure 400 {object} errs.ErrorResponse
// @Router /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.CatalogMetadata
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.trackerSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// AddFromCatalog godoc
// @Summary add a catalog volume to the library
// @Tags books
// @Param volumeId path string true "catalog volume id"
// @Success 201 {object} model.Book
// @Failure 400,502 {object} errs.ErrorResponse
// @Router /books/catalog/{volumeId} [post]
func (h *Handler) AddFromCatalog(c echo.Context) error {
	book, err := h.trackerSvc.AddFromCatalog(c.Request().Context(), c.Param("volumeId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// GetBook godoc
// @Summary get a book
// @Tags books
// @Param id path int true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {object} errs.ErrorResponse
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := h.trackerSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary delete a book and its reading log
// @Description deleting an unknown id succeeds
// @Tags books
// @Param id path int true "book id"
// @Success 204
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	if err = h.trackerSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReadingPage godoc
// @Summary reading progress of a book
// @Tags reading
// @Param id path int true "book id"
// @Success 200 {object} model.ReadingPage
// @Failure 404 {object} errs.ErrorResponse
// @Router /books/{id}/reading [get]
func (h *Handler) ReadingPage(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	page, err := h.trackerSvc.ReadingPage(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// ListSessions godoc
// @Summary reading sessions of a book
// @Tags reading
// @Param id path int true "book id"
// @Success 200 {array} model.ReadingLogEntry
// @Failure 404 {object} errs.ErrorResponse
// @Router /books/{id}/sessions [get]
func (h *Handler) ListSessions(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	entries, err := h.trackerSvc.ListEntries(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// RecordSession godoc
// @Summary record a reading session
// @Tags reading
// @Param id path int true "book id"
// @Param session body model.RecordSessionRequest true "session"
// @Success 201 {object} model.ReadingLogEntry
// @Failure 400,404 {object} errs.ErrorResponse
// @Router /books/{id}/sessions [post]
func (h *Handler) RecordSession(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	var req model.RecordSessionRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BookID = id
	entry, err := h.trackerSvc.RecordSession(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// GenerateReview godoc
// @Summary review assembled from the reading log
// @Tags reading
// @Param id path int true "book id"
// @Success 200 {object} model.Review
// @Failure 404 {object} errs.ErrorResponse
// @Router /books/{id}/review [get]
func (h *Handler) GenerateReview(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	review, err := h.trackerSvc.GenerateReview(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, review)
}

func bookID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrCatalogUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
