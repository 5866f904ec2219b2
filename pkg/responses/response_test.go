package responses

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/tournaments", nil)
	return ctx, rec
}

func TestInternalErrorJSONLogsButHidesError(t *testing.T) {
	ctx, rec := testContext(t)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	InternalErrorJSON(ctx, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "connection refused")

	// The diagnostic survives on the server side.
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "/api/tournaments")
}

func TestInternalErrorJSONNilError(t *testing.T) {
	ctx, rec := testContext(t)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	InternalErrorJSON(ctx, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, buf.String())
}
