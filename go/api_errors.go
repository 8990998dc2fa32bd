package fulfillmentserver

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-gin-fulfillment/internal/shared/errors"
)

// respondServiceError maps stage failures onto RFC 7807 responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	apierrors.RespondError(c, err)
}

// respondBadRequest answers a request the handler could not parse.
func respondBadRequest(c *gin.Context, detail string) {
	apierrors.DefaultResponder.BadRequest(c, detail)
}

// respondNoRoute answers unknown paths with a problem document instead of gin's text body.
func respondNoRoute(c *gin.Context) {
	apierrors.DefaultResponder.NotFound(c, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}
