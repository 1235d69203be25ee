package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *API) createProvider(c echo.Context) error {
	var dto providerDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	p, err := a.providers.Create(c.Request().Context(), dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (a *API) listProviders(c echo.Context) error {
	providers, err := a.providers.List(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, providers)
}

func (a *API) getProvider(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := a.providers.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) updateProvider(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var dto providerDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	p, err := a.providers.Update(c.Request().Context(), id, dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) deleteProvider(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := a.providers.Delete(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}
