package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// filterAll is the sentinel the dashboard sends for "no filter".
const filterAll = "todas"

func optString(ctx echo.Context, name string) *string {
	v := ctx.QueryParam(name)
	if v == "" || v == filterAll {
		return nil
	}
	return &v
}

// optFloat follows the original contract: absent, empty or unparsable values
// impose no constraint.
func optFloat(ctx echo.Context, name string) *float64 {
	v := ctx.QueryParam(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func optInt64(ctx echo.Context, name string) *int64 {
	v := ctx.QueryParam(name)
	if v == "" {
		return nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

// dateRange reads dataInicio/dataFim; the range only applies when both parse.
func dateRange(ctx echo.Context) (*time.Time, *time.Time) {
	from, errFrom := parseDate(ctx.QueryParam("dataInicio"))
	to, errTo := parseDate(ctx.QueryParam("dataFim"))
	if errFrom != nil || errTo != nil {
		return nil, nil
	}
	return &from, &to
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// toFloat coerces a JSON value (number, numeric string or nil) to a float,
// nil when unparsable.
func toFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(t, ",", ".")), 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return nil
}

func toInt64(v any) *int64 {
	switch t := v.(type) {
	case float64:
		i := int64(t)
		return &i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		return &i
	}
	return nil
}
