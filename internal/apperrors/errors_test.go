package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Aggregates(t *testing.T) {
	var verr ValidationError
	assert.False(t, verr.HasErrors())
	assert.NoError(t, verr.ErrOrNil())

	verr.Add("first rule failed!")
	verr.Add("second rule failed!")

	assert.True(t, verr.HasErrors())
	err := verr.ErrOrNil()
	assert.Error(t, err)
	assert.Equal(t, "invalid fields: first rule failed!; second rule failed!", err.Error())
}

func TestAsValidation(t *testing.T) {
	verr, ok := AsValidation(NewValidationError("broken!"))
	assert.True(t, ok)
	assert.Equal(t, []string{"broken!"}, verr.Fields)

	wrapped := fmt.Errorf("save failed: %w", NewValidationError("broken!"))
	_, ok = AsValidation(wrapped)
	assert.True(t, ok)

	_, ok = AsValidation(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrNoActiveUser_IsAuthenticationFailure(t *testing.T) {
	assert.ErrorIs(t, ErrNoActiveUser, ErrAuthenticationFailed)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidRequest, CodeOf(NewValidationError("broken!")))
	assert.Equal(t, CodeAuthenticationFailed, CodeOf(ErrAuthenticationFailed))
	assert.Equal(t, CodeAuthenticationFailed, CodeOf(ErrNoActiveUser))
	assert.Equal(t, CodeEntityNotFound, CodeOf(ErrNotFound))
	assert.Equal(t, CodeOperationFailed, CodeOf(ErrDuplicate))
	assert.Equal(t, CodeOperationFailed, CodeOf(errors.New("anything else")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("broken!")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrNoActiveUser))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrDuplicate))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrInternal))
}
