package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"vacuum/internal/delivery/api/validator"
	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return newTestEcho().NewContext(req, rec), rec
}

type formFile struct {
	field    string
	filename string
	content  string
}

func newMultipartContext(t *testing.T, method, target string, fields map[string]string, files ...formFile) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return newTestEcho().NewContext(req, rec), rec
}

func withPathID(c echo.Context, name string, id uuid.UUID) {
	c.SetParamNames(name)
	c.SetParamValues(id.String())
}

func testUser(role entity.RoleName) *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: string(role) + "@example.com",
		Role:  &entity.Role{ID: uuid.New(), Name: role},
	}
}

func asUser(c echo.Context, role entity.RoleName) *entity.User {
	user := testUser(role)
	deliverycontext.SetCurrentUser(c, user)

	return user
}

// decodeData unmarshals the data member of a success envelope.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

// dataOf returns the raw data member of a success envelope.
func dataOf(t *testing.T, body []byte) string {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return string(envelope.Data)
}
