package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/unifiedui/docskin/internal/domain/errors"
	"github.com/unifiedui/docskin/internal/pkg/extjson"
	"github.com/unifiedui/docskin/internal/services/skin"
)

// listQuery holds the parsed query string of the items and stream endpoints.
type listQuery struct {
	options []skin.QueryOption
	limit   int64
	skip    int64
}

// parseListQuery reads filter, sort and projection as relaxed Extended JSON
// and limit and skip as non-negative integers.
func parseListQuery(c *gin.Context) (*listQuery, error) {
	q := &listQuery{}

	if raw := c.Query("filter"); raw != "" {
		filter, err := extjson.ParseDocument(raw)
		if err != nil {
			return nil, domainerrors.NewValidationError("invalid filter", err.Error())
		}
		q.options = append(q.options, skin.Filter(filter))
	}

	if raw := c.Query("sort"); raw != "" {
		sort, err := extjson.ParseOrdered(raw)
		if err != nil {
			return nil, domainerrors.NewValidationError("invalid sort", err.Error())
		}
		q.options = append(q.options, skin.Sort(sort))
	}

	if raw := c.Query("projection"); raw != "" {
		projection, err := extjson.ParseDocument(raw)
		if err != nil {
			return nil, domainerrors.NewValidationError("invalid projection", err.Error())
		}
		q.options = append(q.options, skin.Projection(projection))
	}

	limit, err := parseCount(c, "limit")
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		q.limit = limit
		q.options = append(q.options, skin.Limit(limit))
	}

	skip, err := parseCount(c, "skip")
	if err != nil {
		return nil, err
	}
	if skip > 0 {
		q.skip = skip
		q.options = append(q.options, skin.Skip(skip))
	}

	return q, nil
}

func parseCount(c *gin.Context, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, domainerrors.NewValidationError("invalid "+key, "must be a non-negative integer")
	}
	return n, nil
}
