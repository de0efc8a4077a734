// Package api exposes the showroom stores over HTTP. Routing and JSON
// encoding are handled by echo; semantics live in the store packages.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"showroom/internal/catalog"
	"showroom/internal/compare"
	"showroom/internal/kvstore"
	"showroom/internal/models"
	"showroom/internal/prefs"
	"showroom/internal/selection"
	"showroom/internal/view"
)

// Handler serves the catalog, selection, and preference stores.
type Handler struct {
	catalog   *catalog.Store
	selection *selection.Store
	prefs     *prefs.Store
}

// NewHandler creates an API handler over the given stores.
func NewHandler(cat *catalog.Store, sel *selection.Store, pref *prefs.Store) *Handler {
	return &Handler{catalog: cat, selection: sel, prefs: pref}
}

// RegisterRoutes attaches all endpoints to e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	api := e.Group("/api")
	api.GET("/cars", h.ListCars)
	api.POST("/cars", h.AddCar)
	api.GET("/cars/:id", h.GetCar)
	api.PATCH("/cars/:id", h.UpdateCar)
	api.DELETE("/cars/:id", h.DeleteCar)

	api.GET("/stats", h.Stats)
	api.GET("/types", h.Types)
	api.GET("/brands", h.Brands)

	api.GET("/favorites", h.ListFavorites)
	api.POST("/favorites/:id", h.ToggleFavorite)
	api.DELETE("/favorites", h.ClearFavorites)

	api.GET("/compare", h.CompareMatrix)
	api.POST("/compare/:id", h.ToggleCompare)
	api.DELETE("/compare", h.ClearCompare)

	api.GET("/recent", h.RecentViews)

	api.GET("/userdata", h.ExportUserData)
	api.PUT("/userdata", h.ImportUserData)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// carID parses the :id path parameter.
func carID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}
	return id, nil
}

// storeError maps store failures to HTTP responses. Persistence failures
// are non-fatal: the mutation took effect in memory, so the caller gets a
// success payload with a warning attached instead of an error status.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, selection.ErrCompareFull):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// respond writes payload, attaching a warning when a non-fatal persistence
// failure occurred.
func respond(c echo.Context, status int, payload map[string]any, persistErr error) error {
	if persistErr != nil {
		payload["warning"] = persistErr.Error()
	}
	return c.JSON(status, payload)
}

// ListCars applies the filter/sort criteria from the query string.
func (h *Handler) ListCars(c echo.Context) error {
	criteria := view.Criteria{
		Search:     c.QueryParam("search"),
		Type:       c.QueryParam("type"),
		Horsepower: c.QueryParam("horsepower"),
		Sort:       view.SortKey(c.QueryParam("sort")),
	}
	if v := c.QueryParam("price_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid price_min")
		}
		criteria.PriceMin = n
	}
	if v := c.QueryParam("price_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid price_max")
		}
		criteria.PriceMax = n
	}

	cars := view.Apply(h.catalog.All(), criteria)
	return c.JSON(http.StatusOK, map[string]any{
		"data":  cars,
		"total": len(cars),
	})
}

// GetCar returns one car and records a recent view, mirroring the details
// page.
func (h *Handler) GetCar(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}

	car, err := h.catalog.Get(id)
	if err != nil {
		return storeError(c, err)
	}

	persistErr := h.prefs.AddRecentView(id)
	return respond(c, http.StatusOK, map[string]any{"data": car}, persistErr)
}

func (h *Handler) AddCar(c echo.Context) error {
	var car models.CarRecord
	if err := c.Bind(&car); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car payload")
	}

	id, err := h.catalog.Add(car)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusCreated, map[string]any{"id": id}, err)
}

func (h *Handler) UpdateCar(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}

	var patch models.CarPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patch payload")
	}

	err = h.catalog.Update(id, patch)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}

	car, getErr := h.catalog.Get(id)
	if getErr != nil {
		return storeError(c, getErr)
	}
	return respond(c, http.StatusOK, map[string]any{"data": car}, err)
}

func (h *Handler) DeleteCar(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}

	err = h.catalog.Remove(id)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}
	return respond(c, http.StatusOK, map[string]any{"deleted": id}, err)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Stats())
}

func (h *Handler) Types(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Types())
}

func (h *Handler) Brands(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Brands())
}

// ListFavorites resolves favorite ids against the catalog, dropping
// dangling ids.
func (h *Handler) ListFavorites(c echo.Context) error {
	ids := h.selection.Favorites()
	cars := selection.ResolveCars(ids, h.catalog.All())
	return c.JSON(http.StatusOK, map[string]any{
		"ids":   ids,
		"data":  cars,
		"total": len(cars),
	})
}

func (h *Handler) ToggleFavorite(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}

	on, err := h.selection.ToggleFavorite(id)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}
	return respond(c, http.StatusOK, map[string]any{"id": id, "favorite": on}, err)
}

func (h *Handler) ClearFavorites(c echo.Context) error {
	err := h.selection.ClearFavorites()
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}
	return respond(c, http.StatusOK, map[string]any{"cleared": true}, err)
}

// CompareMatrix builds the comparison table from the persisted compare
// set. Below 2 resolvable cars the matrix is null and the caller shows an
// empty state.
func (h *Handler) CompareMatrix(c echo.Context) error {
	ids := h.selection.CompareSet()
	cars := selection.ResolveCars(ids, h.catalog.All())

	payload := map[string]any{
		"ids":   ids,
		"count": len(cars),
	}

	matrix, err := compare.Build(cars)
	if err != nil {
		payload["matrix"] = nil
		return c.JSON(http.StatusOK, payload)
	}
	payload["matrix"] = matrix
	return c.JSON(http.StatusOK, payload)
}

func (h *Handler) ToggleCompare(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}

	on, err := h.selection.ToggleCompare(id)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}
	return respond(c, http.StatusOK, map[string]any{"id": id, "comparing": on}, err)
}

func (h *Handler) ClearCompare(c echo.Context) error {
	err := h.selection.ClearCompare()
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return storeError(c, err)
	}
	return respond(c, http.StatusOK, map[string]any{"cleared": true}, err)
}

func (h *Handler) RecentViews(c echo.Context) error {
	ids, err := h.prefs.RecentViews()
	if err != nil {
		return storeError(c, err)
	}
	cars := selection.ResolveCars(ids, h.catalog.All())
	return c.JSON(http.StatusOK, map[string]any{
		"ids":  ids,
		"data": cars,
	})
}

func (h *Handler) ExportUserData(c echo.Context) error {
	bundle, err := h.prefs.ExportUserData(h.selection)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, bundle)
}

func (h *Handler) ImportUserData(c echo.Context) error {
	var bundle models.UserData
	if err := c.Bind(&bundle); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user data payload")
	}

	err := h.prefs.ImportUserData(&bundle, h.selection)
	if err != nil && !errors.Is(err, kvstore.ErrPersistence) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, map[string]any{"imported": true}, err)
}
