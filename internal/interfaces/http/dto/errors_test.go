package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(ErrCodeForbidden))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeEmptyCart))
	assert.Equal(t, http.StatusServiceUnavailable, GetHTTPStatus(ErrCodeConnectivity))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestGetHTTPStatusDomainValidationCodes(t *testing.T) {
	// Every code a domain factory can raise from user input answers 400
	for _, code := range []string{
		"INVALID_ARTICLE",
		"INVALID_CATEGORY",
		"INVALID_EMAIL",
		"INVALID_NAME",
		"INVALID_PASSWORD",
		"INVALID_POSITION",
		"INVALID_QUANTITY",
		"INVALID_ROLE",
		"INVALID_USER",
		"INVALID_USERNAME",
	} {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(code), code)
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
