package text

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNullOrEmpty(t *testing.T) {
	t.Parallel()

	value, empty, blank := "asdf123", "", "   "

	assert.False(t, IsNullOrEmpty(&value))
	assert.True(t, IsNullOrEmpty(&empty))
	assert.True(t, IsNullOrEmpty(nil))
	assert.False(t, IsNullOrEmpty(&blank))
}

func TestToStringOrDefault(t *testing.T) {
	t.Parallel()

	n := 3819
	assert.Equal(t, "3819", ToStringOrDefault(&n, "N/A"))
	assert.Equal(t, "N/A", ToStringOrDefault[int](nil, "N/A"))
}

func TestFormatOrDefault(t *testing.T) {
	t.Parallel()

	d := time.Date(2016, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15-03-2016", FormatOrDefault(&d, "02-01-2006", "N/A"))
	assert.Equal(t, "N/A", FormatOrDefault[time.Time](nil, "02-01-2006", "N/A"))
}
