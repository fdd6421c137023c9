package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vacuum/internal/delivery/context"
	domainerrors "vacuum/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"count": 3}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"count":3},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestSuccessWithMessage(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, SuccessWithMessage(c, http.StatusOK, "Machine deleted", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Machine deleted","data":null,"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_HidesDetails(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret"))

			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, "CODE", body.Error.Code)
			if tt.wantDetails {
				assert.Equal(t, "secret", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Attachment(c, "service-report-1.pdf", "application/pdf", []byte("%PDF")))

	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename=service-report-1.pdf`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF", rec.Body.String())
}
