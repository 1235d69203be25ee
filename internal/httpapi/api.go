// Package httpapi exposes the registries over REST. It is a thin
// boundary: request parsing and field validation happen here, then every
// operation maps one-to-one onto a registry call. Error classification
// from package domain decides the status code; the body carries the
// wrapped message.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
	"serverbook/internal/registry"
)

// API holds the registries the handlers delegate to.
type API struct {
	providers *registry.Providers
	people    *registry.People
	servers   *registry.Servers
	costs     *registry.Costs
}

// New creates the API over an open inventory store.
func New(store *inventory.Store) *API {
	return &API{
		providers: registry.NewProviders(store),
		people:    registry.NewPeople(store),
		servers:   registry.NewServers(store),
		costs:     registry.NewCosts(store),
	}
}

// Router builds the echo instance with all routes and middleware mounted.
func (a *API) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	e.POST("/providers", a.createProvider)
	e.GET("/providers", a.listProviders)
	e.GET("/providers/:id", a.getProvider)
	e.PATCH("/providers/:id", a.updateProvider)
	e.DELETE("/providers/:id", a.deleteProvider)

	e.POST("/people", a.createPerson)
	e.GET("/people", a.listPeople)
	e.GET("/people/:id", a.getPerson)
	e.PATCH("/people/:id", a.updatePerson)
	e.DELETE("/people/:id", a.deletePerson)

	e.POST("/servers", a.createServer)
	e.GET("/servers", a.listServers)
	e.GET("/servers/:id", a.getServer)
	e.PATCH("/servers/:id", a.updateServer)
	e.DELETE("/servers/:id", a.deleteServer)

	e.POST("/cost-snapshots", a.createSnapshot)
	e.GET("/cost-snapshots", a.listSnapshots)
	e.GET("/cost-snapshots/:id", a.getSnapshot)
	e.PATCH("/cost-snapshots/:id", a.updateSnapshot)
	e.DELETE("/cost-snapshots/:id", a.deleteSnapshot)

	return e
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// mapErr translates domain error classes to HTTP status codes. Anything
// unclassified surfaces as a 500 through echo's default handler.
func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConstraint):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
