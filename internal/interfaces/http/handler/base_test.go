package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricesheet/backend/internal/domain/shared"
	"github.com/pricesheet/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func decodeEnvelope(t *testing.T, body []byte) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHandleErrorDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "load failure maps to 500",
			err:        shared.NewDomainError(shared.CodeLoadFailed, "could not read workbook"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeLoadFailed,
		},
		{
			name:       "bad request maps to 400",
			err:        shared.NewDomainError(shared.CodeBadRequest, "missing field"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrCodeBadRequest,
		},
		{
			name:       "not found maps to 404",
			err:        shared.NewDomainError(shared.CodeNotFound, "no such thing"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "unknown error type maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			router := gin.New()
			router.GET("/", func(c *gin.Context) {
				h.HandleError(c, tt.err)
			})

			w := performRequest(router, "GET", "/")

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeEnvelope(t, w.Body.Bytes())
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorWrappedDomainError(t *testing.T) {
	inner := shared.NewDomainError(shared.CodeRenderFailed, "compose failed")
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		h.HandleError(c, shared.WrapDomainError(shared.CodeExportFailed, "export failed", inner))
	})

	w := performRequest(router, "GET", "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeExportFailed, resp.Error.Code)
}

func TestSuccessEnvelope(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		h.Success(c, gin.H{"value": 42})
	})

	w := performRequest(router, "GET", "/")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestErrorIncludesRequestID(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.Set("request_id", "req-123")
		h.BadRequest(c, "nope")
	})

	w := performRequest(router, "GET", "/")

	resp := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "req-123", resp.RequestID)
}
