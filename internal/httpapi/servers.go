package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *API) createServer(c echo.Context) error {
	var dto serverDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	fields, err := dto.fields()
	if err != nil {
		return mapErr(err)
	}
	srv, err := a.servers.Create(c.Request().Context(), fields)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusCreated, srv)
}

func (a *API) listServers(c echo.Context) error {
	servers, err := a.servers.List(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, servers)
}

func (a *API) getServer(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	srv, err := a.servers.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, srv)
}

func (a *API) updateServer(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var dto serverDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	fields, err := dto.fields()
	if err != nil {
		return mapErr(err)
	}
	srv, err := a.servers.Update(c.Request().Context(), id, fields)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, srv)
}

func (a *API) deleteServer(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := a.servers.Delete(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}
