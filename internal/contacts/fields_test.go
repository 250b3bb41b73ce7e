package contacts

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"short", "Alice", false},
		{"exactly 20", strings.Repeat("a", 20), false},
		{"21 characters", strings.Repeat("a", 21), true},
		{"20 cyrillic letters", strings.Repeat("ж", 20), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
		})
	}
}

func TestNewNameLengthBoundary(t *testing.T) {
	for l := 0; l <= 40; l++ {
		v := strings.Repeat("x", l)
		_, err := NewName(v)
		if l > 20 {
			assert.Error(t, err, "length %d", l)
		} else {
			assert.NoError(t, err, "length %d", l)
		}
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ten digits", "0988285400", false},
		{"nine digits", "098828540", true},
		{"eleven digits", "09882854001", true},
		{"letter inside", "09882a5400", true},
		{"plus prefix", "+988285400", true},
		{"spaces", "098 828 54", true},
		{"non-ascii digits", "٠١٢٣٤٥٦٧٨٩", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Contains(t, vErr.Msg, "10 digits")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
		})
	}
}

func TestNewBirthday(t *testing.T) {
	b, err := NewBirthday("27.10.1988")
	require.NoError(t, err)
	assert.False(t, b.IsZero())
	assert.Equal(t, "27.10.1988", b.String())
	assert.Equal(t, 1988, b.Date().Year())

	for _, bad := range []string{"30.02.2020", "1988-10-27", "27/10/1988", "7.10.1988", ""} {
		_, err := NewBirthday(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrValidation), bad)
		assert.Contains(t, err.Error(), bad)
	}
}

func TestBirthdayZeroRendersEmpty(t *testing.T) {
	var b Birthday
	assert.True(t, b.IsZero())
	assert.Equal(t, "", b.String())
}

func TestNewBirthdayFirstDayOfEra(t *testing.T) {
	b, err := NewBirthday("01.01.0001")
	require.NoError(t, err)
	assert.False(t, b.IsZero())
	assert.Equal(t, "01.01.0001", b.String())
}
