package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *API) createPerson(c echo.Context) error {
	var dto personDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	p, err := a.people.Create(c.Request().Context(), dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (a *API) listPeople(c echo.Context) error {
	people, err := a.people.List(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, people)
}

func (a *API) getPerson(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := a.people.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) updatePerson(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var dto personDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	p, err := a.people.Update(c.Request().Context(), id, dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) deletePerson(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := a.people.Delete(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}
