package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	router := gin.New()
	router.GET("/probe", func(c *gin.Context) { RespondError(c, err) })
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestRespondError_MapsStageTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantDetail string
	}{
		{
			name:       "bad_request",
			err:        apperr.BadRequest("Invalid Order Num"),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeBadRequest,
			wantDetail: "Invalid Order Num",
		},
		{
			name:       "unavailable",
			err:        apperr.Unavailable("Failed to dispatch shirts!"),
			wantStatus: http.StatusServiceUnavailable,
			wantType:   TypeServiceUnavailable,
			wantDetail: "Failed to dispatch shirts!",
		},
		{
			name:       "upstream",
			err:        apperr.Upstream(http.StatusBadRequest, "Failed to make shirts!"),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeUpstreamFailure,
			wantDetail: "HTTP 400: Failed to make shirts!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, problem := respond(t, tt.err)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
			require.Equal(t, tt.wantType, problem.Type)
			require.Equal(t, tt.wantDetail, problem.Detail)
			require.Equal(t, "/probe", problem.Instance)
		})
	}
}

func TestRespondError_UnknownIsInternal(t *testing.T) {
	rec, problem := respond(t, http.ErrHandlerTimeout)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, TypeInternal, problem.Type)
}

func TestWithExtension_DoesNotAliasTemplate(t *testing.T) {
	first := ErrBadRequest.WithExtension("a", 1)
	second := first.WithExtension("b", 2)
	require.Len(t, first.Extensions, 1)
	require.Len(t, second.Extensions, 2)
	require.Nil(t, ErrBadRequest.Extensions)
}

func TestHTTPStatusFromError(t *testing.T) {
	require.Equal(t, http.StatusServiceUnavailable, HTTPStatusFromError(apperr.Unavailable("x")))
	require.Equal(t, http.StatusNotFound, HTTPStatusFromError(ErrNotFound))
}
