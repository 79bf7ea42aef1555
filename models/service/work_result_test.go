package service_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/service"
)

func TestNewWorkResult(t *testing.T) {
	hostname, _ := os.Hostname()
	result := service.NewWorkResult(constants.OperationAIPCreation)
	assert.Equal(t, constants.OperationAIPCreation, result.Operation)
	assert.Equal(t, hostname, result.Host)
	assert.Equal(t, os.Getpid(), result.Pid)
	assert.NotNil(t, result.Errors)
	assert.Equal(t, 0, len(result.Errors))
	assert.Equal(t, 0, result.Attempt)
}

func TestWorkResultStart(t *testing.T) {
	result := service.NewWorkResult(constants.OperationAIPCreation)
	assert.False(t, result.Started())

	result.Start()
	assert.True(t, result.Started())
	assert.Equal(t, 1, result.Attempt)

	result.AddError(service.NewProcessingError("corr-1", "bag-1", "oops", false))
	assert.True(t, result.HasErrors())

	// A new attempt clears the previous attempt's errors.
	result.Start()
	assert.Equal(t, 2, result.Attempt)
	assert.False(t, result.HasErrors())
}

func TestWorkResultFinish(t *testing.T) {
	result := service.NewWorkResult(constants.OperationAIPCreation)
	result.Start()
	assert.False(t, result.Finished())
	assert.False(t, result.Succeeded())

	result.Finish()
	assert.True(t, result.Finished())
	assert.True(t, result.Succeeded())
	assert.True(t, result.RunTime() >= 0)
}

func TestWorkResultFatalErrors(t *testing.T) {
	result := service.NewWorkResult(constants.OperationAIPCreation)
	result.Start()
	result.AddError(service.NewProcessingError("corr-1", "bag-1", "transient", false))
	assert.False(t, result.HasFatalErrors())

	result.AddError(service.NewProcessingError("corr-1", "bag-1", "bad profile", true))
	result.AddError(service.NewProcessingError("corr-1", "bag-1", "bad fixity", true))
	assert.True(t, result.HasFatalErrors())
	assert.Equal(t, 2, len(result.FatalErrors()))
	assert.Equal(t, "bad profile | bad fixity", result.FatalErrorMessage())

	result.Finish()
	assert.False(t, result.Succeeded())
}

func TestWorkResultJSONRoundTrip(t *testing.T) {
	result := service.NewWorkResult(constants.OperationAIPCreation)
	result.Start()
	result.AddError(service.NewProcessingError("corr-1", "bag-1", "oops", true))
	result.Finish()

	data, err := result.ToJSON()
	require.Nil(t, err)

	decoded, err := service.WorkResultFromJSON(data)
	require.Nil(t, err)
	assert.Equal(t, result.Operation, decoded.Operation)
	assert.Equal(t, result.Attempt, decoded.Attempt)
	require.Equal(t, 1, len(decoded.Errors))
	assert.Equal(t, "oops", decoded.Errors[0].Message)
	assert.True(t, decoded.Errors[0].IsFatal)
}
