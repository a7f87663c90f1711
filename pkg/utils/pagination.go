package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListParams carries the limit requested by a list endpoint.
type ListParams struct {
	Limit int
}

func GetListParams(c echo.Context, defaultLimit int) ListParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if limit <= 0 || limit > 200 {
		limit = defaultLimit
	}

	return ListParams{Limit: limit}
}
