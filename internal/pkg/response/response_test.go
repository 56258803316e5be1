package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"starwars/internal/domain"
	"starwars/internal/pkg/validator"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&validator.Error{Fields: map[string]string{"Name": "required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("%w: bad kind", domain.ErrInvalidInput), http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("%w: planet 9", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: dup", domain.ErrConstraintViolation), http.StatusConflict, "CONSTRAINT_VIOLATION"},
		{domain.ErrNotConfigured, http.StatusServiceUnavailable, "NOT_CONFIGURED"},
		{domain.ErrMissingRelation, http.StatusInternalServerError, "MISSING_RELATION"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.code)
		assert.Contains(t, w.Body.String(), tc.code)
		assert.Len(t, c.Errors, 1)
	}
}

func TestFromError_HidesStorageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, err := range []error{
		fmt.Errorf("%w: UNIQUE constraint failed: user.email", domain.ErrConstraintViolation),
		fmt.Errorf("%w: record not found in user.email", domain.ErrNotFound),
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, err)

		assert.NotContains(t, w.Body.String(), "user.email")
		assert.Equal(t, err, c.Errors.Last().Err)
	}
}
