package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (a *API) createSnapshot(c echo.Context) error {
	var dto snapshotDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	snap, err := a.costs.Create(c.Request().Context(), dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusCreated, snap)
}

// listSnapshots returns the whole ledger, or one server's slice of it when
// the serverId query parameter is present.
func (a *API) listSnapshots(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("serverId"); raw != "" {
		serverID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid serverId")
		}
		snaps, err := a.costs.ListByServer(ctx, serverID)
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(http.StatusOK, snaps)
	}

	snaps, err := a.costs.List(ctx)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, snaps)
}

func (a *API) getSnapshot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	snap, err := a.costs.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (a *API) updateSnapshot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var dto snapshotDTO
	if err := bind(c, &dto); err != nil {
		return err
	}
	snap, err := a.costs.Update(c.Request().Context(), id, dto.fields())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (a *API) deleteSnapshot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := a.costs.Delete(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}
