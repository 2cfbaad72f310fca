package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"required,max=5"`
	Type string `json:"type" validate:"required,oneof=individual company"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "Ana", Type: "company"}))

	err := v.Validate(&sample{Name: "", Type: "robot"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"Name": "is required",
		"Type": "must be one of: individual company",
	}, verr.Fields())
	assert.Contains(t, err.Error(), "field 'Name' is required")
}
