package rmiddleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/questboard/internal/middleware"
	"github.com/DhavalSuthar-24/questboard/pkg/responses"
)

// ResourceKey is where OwnerMiddleware stores the loaded resource.
const ResourceKey = "owned_resource"

// Loader fetches the resource identified by a path parameter.
type Loader[T any] func(ctx context.Context, id uint) (*T, error)

// OwnerCheck reports whether userID may modify the resource.
type OwnerCheck[T any] func(resource *T, userID uint) bool

// OwnerMiddleware loads the resource named by the :param path parameter and
// lets the request through only for its owner. notFound is the loader error
// that means the resource does not exist; name is used in the 404 body.
func OwnerMiddleware[T any](param, name string, load Loader[T], isOwner OwnerCheck[T], notFound error, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "")
			return
		}

		id, err := strconv.ParseUint(c.Param(param), 10, 32)
		if err != nil {
			responses.NotFound(c, name)
			return
		}

		resource, err := load(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, notFound) {
				responses.NotFound(c, name)
				return
			}
			log.ErrorContext(c.Request.Context(), "load resource failed", slog.String("op", "rmiddleware.owner"), slog.String("resource", name), slog.Any("error", err))
			responses.InternalServerError(c)
			return
		}

		if !isOwner(resource, userID) {
			c.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{
				Detail: "Only the organizer can modify this " + strings.ToLower(name) + ".",
			})
			return
		}

		c.Set(ResourceKey, resource)
		c.Next()
	}
}

// Resource returns the value OwnerMiddleware stored for this request.
func Resource[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ResourceKey)
	if !ok {
		return nil, false
	}
	r, ok := v.(*T)
	return r, ok
}
