// Package handler contains the HTTP handlers of the API.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the date-only form accepted next to RFC 3339.
const dateLayout = time.DateOnly

// listQueryParams are the query parameters shared by every listing.
type listQueryParams struct {
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	Page      *int   `query:"page"`
	Limit     *int   `query:"limit"`
}

func bindListQuery(c echo.Context) (entity.ListQuery, error) {
	var params listQueryParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return entity.ListQuery{}, domainerrors.ErrValidationFailed.WithDetails("page and limit must be integers")
	}

	query := entity.ListQuery{
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: entity.SortOrder(params.SortOrder),
	}
	// Absent parameters take the defaults; a sent zero is out of range.
	if params.Page != nil {
		if *params.Page < 1 {
			return entity.ListQuery{}, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
		}
		query.Page = *params.Page
	}
	if params.Limit != nil {
		if *params.Limit < 1 || *params.Limit > entity.MaxLimit {
			return entity.ListQuery{}, domainerrors.ErrValidationFailed.WithDetailsf("limit must be between 1 and %d", entity.MaxLimit)
		}
		query.Limit = *params.Limit
	}

	return query, nil
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetailsf("%s must be a UUID", name)
	}

	return id, nil
}

func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("%s must be a UUID", field)
	}

	return &id, nil
}

// isBlank reports a submitted but empty value, which clears optional fields.
func isBlank(value *string) bool {
	return value != nil && strings.TrimSpace(*value) == ""
}

// parseDate accepts 2006-01-02 or RFC 3339. A blank value means unset; see
// isBlank for telling it apart from an absent one.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	raw := strings.TrimSpace(*value)
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetailsf("%s must be a date (YYYY-MM-DD)", field)
}

// formValues returns the submitted form fields, multipart or urlencoded.
func formValues(c echo.Context) (map[string][]string, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed form body")
	}

	return values, nil
}

// optionalField distinguishes a missing field (nil) from an empty one.
func optionalField(values map[string][]string, key string) *string {
	submitted, ok := values[key]
	if !ok || len(submitted) == 0 {
		return nil
	}

	value := submitted[0]

	return &value
}

func readUpload(header *multipart.FileHeader) (usecase.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return usecase.FileUpload{}, errors.Wrapf(err, "failed to open upload %s", header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return usecase.FileUpload{}, errors.Wrapf(err, "failed to read upload %s", header.Filename)
	}

	return usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// optionalUpload reads the single file sent as key, if any.
func optionalUpload(c echo.Context, key string) (*usecase.FileUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	header, err := c.FormFile(key)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("%s could not be read", key)
	}

	upload, err := readUpload(header)
	if err != nil {
		return nil, err
	}

	return &upload, nil
}

// uploads reads every file sent as key.
func uploads(c echo.Context, key string) ([]usecase.FileUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart body")
	}

	result := make([]usecase.FileUpload, 0, len(form.File[key]))
	for _, header := range form.File[key] {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		result = append(result, upload)
	}

	return result, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}
