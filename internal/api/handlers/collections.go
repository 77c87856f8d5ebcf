package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docskin/internal/api/dto"
	"github.com/unifiedui/docskin/internal/api/middleware"
	"github.com/unifiedui/docskin/internal/api/sse"
	"github.com/unifiedui/docskin/internal/core/docdb"
	domainerrors "github.com/unifiedui/docskin/internal/domain/errors"
	"github.com/unifiedui/docskin/internal/pkg/extjson"
	"github.com/unifiedui/docskin/internal/services/skin"
)

// maxBodyBytes caps PATCH and method call bodies.
const maxBodyBytes = 1 << 20

// CollectionsHandler exposes the collection facades over HTTP.
type CollectionsHandler struct {
	db *skin.Database
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(db *skin.Database) *CollectionsHandler {
	return &CollectionsHandler{db: db}
}

// ListCollections handles GET /collections
// @Summary List collections
// @Description Lists the collections stored in the database and the ones with a facade
// @Tags Collections
// @Produce json
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections [get]
func (h *CollectionsHandler) ListCollections(c *gin.Context) {
	names, err := h.db.ListCollectionNames(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("list collections", err))
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, dto.ListCollectionsResponse{
		Collections: names,
		Bound:       h.db.Names(),
	})
}

// ListItems handles GET /collections/{name}/items
// @Summary Find documents
// @Description Returns every document matching the query, in cursor order
// @Tags Collections
// @Produce json
// @Param name path string true "Collection name"
// @Param filter query string false "Filter in relaxed Extended JSON"
// @Param sort query string false "Sort specification in relaxed Extended JSON"
// @Param projection query string false "Projection in relaxed Extended JSON"
// @Param limit query int false "Maximum number of documents"
// @Param skip query int false "Number of documents to skip"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections/{name}/items [get]
func (h *CollectionsHandler) ListItems(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	coll := h.db.Collection(c.Param("name"))
	docs, err := coll.FindItems(c.Request.Context(), q.options...)
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("find documents", err))
		return
	}

	items := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		data, err := extjson.MarshalDocument(doc)
		if err != nil {
			middleware.HandleError(c, domainerrors.NewInternalError("failed to encode document", err))
			return
		}
		items = append(items, data)
	}

	c.JSON(http.StatusOK, dto.ListItemsResponse{
		Items: items,
		Count: len(items),
		Limit: q.limit,
		Skip:  q.skip,
	})
}

// StreamItems handles GET /collections/{name}/stream
// @Summary Stream documents
// @Description Streams matching documents as Server-Sent Events. Each document is a "document" event; the stream ends with exactly one "done" or "error" event.
// @Tags Collections
// @Produce text/event-stream
// @Param name path string true "Collection name"
// @Param filter query string false "Filter in relaxed Extended JSON"
// @Param sort query string false "Sort specification in relaxed Extended JSON"
// @Param projection query string false "Projection in relaxed Extended JSON"
// @Param limit query int false "Maximum number of documents"
// @Param skip query int false "Number of documents to skip"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /api/v1/docskin/collections/{name}/stream [get]
func (h *CollectionsHandler) StreamItems(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	w, err := sse.NewWriter(c.Writer)
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("streaming not supported", err))
		return
	}

	logger := middleware.GetRequestLogger(c)
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	count := 0
	var writeErr error
	h.db.Collection(c.Param("name")).FindEach(ctx, func(step skin.Step) {
		if writeErr != nil {
			return
		}
		switch step.Kind {
		case skin.StepDocument:
			if writeErr = w.WriteDocument(step.Document); writeErr != nil {
				// stop pulling; the stream ends with a cancellation step we ignore
				cancel()
				return
			}
			count++
		case skin.StepEnd:
			writeErr = w.WriteDone(count)
		case skin.StepError:
			domainErr := middleware.ToDomainError("stream documents", step.Err)
			writeErr = w.WriteError(domainErr.Code, domainErr.Message, step.Err.Error())
		}
	}, q.options...)

	middleware.SetDocumentCount(c, count)
	if writeErr != nil {
		logger.Warn().Err(writeErr).Int("documents", count).Msg("stream aborted")
	}
}

// GetItem handles GET /collections/{name}/items/{id}
// @Summary Find a document by id
// @Description Returns the document whose _id matches. A 24-character hex id is matched as an ObjectId, anything else as a literal value.
// @Tags Collections
// @Produce json
// @Param name path string true "Collection name"
// @Param id path string true "Document identifier"
// @Success 200 {object} map[string]interface{} "Document in relaxed Extended JSON"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections/{name}/items/{id} [get]
func (h *CollectionsHandler) GetItem(c *gin.Context) {
	name, id := c.Param("name"), c.Param("id")

	doc, err := h.db.Collection(name).FindByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("find document", err))
		return
	}
	if doc == nil {
		middleware.HandleError(c, domainerrors.NewNotFoundError("document", name+"/"+id))
		return
	}

	data, err := extjson.MarshalDocument(doc)
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to encode document", err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// UpdateItem handles PATCH /collections/{name}/items/{id}
// @Summary Update a document by id
// @Description Applies an update document (relaxed Extended JSON) to the document with the given id
// @Tags Collections
// @Accept json
// @Produce json
// @Param name path string true "Collection name"
// @Param id path string true "Document identifier"
// @Param request body dto.UpdateItemRequest true "Update request"
// @Success 200 {object} dto.UpdateItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid update"
// @Failure 413 {object} dto.ErrorResponse "Request body too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections/{name}/items/{id} [patch]
func (h *CollectionsHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := bindExtJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if len(req.Update) == 0 {
		middleware.HandleError(c, domainerrors.NewValidationError("missing update", "update must be a non-empty document"))
		return
	}

	coll := h.db.Collection(c.Param("name"))
	result, err := coll.UpdateByID(c.Request.Context(), c.Param("id"), req.Update, &docdb.UpdateOptions{Upsert: req.Upsert})
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("update document", err))
		return
	}

	resp := dto.UpdateItemResponse{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
		Upserted: result.UpsertedCount,
	}
	if result.UpsertedID != nil {
		if resp.UpsertedID, err = extjson.MarshalValue(result.UpsertedID); err != nil {
			middleware.HandleError(c, domainerrors.NewInternalError("failed to encode upserted id", err))
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveItem handles DELETE /collections/{name}/items/{id}
// @Summary Remove a document by id
// @Description Removes the document with the given id and reports how many documents were removed (0 or 1)
// @Tags Collections
// @Produce json
// @Param name path string true "Collection name"
// @Param id path string true "Document identifier"
// @Success 200 {object} dto.RemoveItemResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections/{name}/items/{id} [delete]
func (h *CollectionsHandler) RemoveItem(c *gin.Context) {
	removed, err := h.db.Collection(c.Param("name")).RemoveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("remove document", err))
		return
	}

	c.JSON(http.StatusOK, dto.RemoveItemResponse{Removed: removed})
}

// ListMethods handles GET /collections/{name}/methods
// @Summary List bound methods
// @Tags Methods
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} dto.MethodsResponse
// @Router /api/v1/docskin/collections/{name}/methods [get]
func (h *CollectionsHandler) ListMethods(c *gin.Context) {
	coll := h.db.Collection(c.Param("name"))
	c.JSON(http.StatusOK, dto.MethodsResponse{
		Collection: coll.Name(),
		Methods:    coll.Methods(),
	})
}

// CallMethod handles POST /collections/{name}/methods/{method}
// @Summary Call a bound method
// @Description Invokes a method bound on the collection with positional arguments given in relaxed Extended JSON
// @Tags Methods
// @Accept json
// @Produce json
// @Param name path string true "Collection name"
// @Param method path string true "Method name"
// @Param request body dto.CallMethodRequest false "Method arguments"
// @Success 200 {object} dto.CallMethodResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid arguments"
// @Failure 413 {object} dto.ErrorResponse "Request body too large"
// @Failure 404 {object} dto.ErrorResponse "Method not bound"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docskin/collections/{name}/methods/{method} [post]
func (h *CollectionsHandler) CallMethod(c *gin.Context) {
	var req dto.CallMethodRequest
	if err := bindExtJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	method := c.Param("method")
	out, err := h.db.Collection(c.Param("name")).Call(c.Request.Context(), method, req.Args...)
	if err != nil {
		middleware.HandleError(c, middleware.ToDomainError("call method", err))
		return
	}

	result, err := extjson.MarshalValue(out)
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to encode result", err))
		return
	}

	c.JSON(http.StatusOK, dto.CallMethodResponse{Method: method, Result: result})
}

// bindExtJSON decodes a relaxed Extended JSON body of at most maxBodyBytes
// into v. An empty body leaves v untouched.
func bindExtJSON(c *gin.Context, v interface{}) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domainerrors.NewPayloadTooLargeError(tooLarge.Limit)
		}
		return domainerrors.NewValidationError("invalid request body", err.Error())
	}
	if len(body) == 0 {
		return nil
	}
	if err := bson.UnmarshalExtJSON(body, false, v); err != nil {
		return domainerrors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}
