package httperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "past_date"))

	code, ok := Code(err)
	assert.True(t, ok)
	assert.Equal(t, "time_conflict", code)

	_, ok = Code(fmt.Errorf("boom"))
	assert.False(t, ok)
}
