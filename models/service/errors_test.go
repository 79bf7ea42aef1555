package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hetarchief/aip-services/models/service"
)

func TestNewProcessingError(t *testing.T) {
	err := service.NewProcessingError("corr-1", "/sips/bag-1", "no fixity", true)
	assert.Equal(t, "corr-1", err.CorrelationID)
	assert.Equal(t, "/sips/bag-1", err.Identifier)
	assert.Equal(t, "no fixity", err.Message)
	assert.True(t, err.IsFatal)
	assert.Contains(t, err.Source, "errors_test.go")
}

func TestProcessingErrorString(t *testing.T) {
	err := service.NewProcessingError("corr-1", "/sips/bag-1", "no fixity", true)
	message := err.Error()
	assert.Contains(t, message, "(correlation corr-1)")
	assert.Contains(t, message, "(message: no fixity)")
	assert.Contains(t, message, "(severity: fatal)")
	assert.Contains(t, message, "(identifier: /sips/bag-1)")

	err = service.NewProcessingError("corr-1", "/sips/bag-1", "pid down", false)
	assert.Contains(t, err.Error(), "(severity: non-fatal)")
}
