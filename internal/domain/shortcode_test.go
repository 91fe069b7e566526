package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr error
	}{
		{
			name: "valid alphanumeric code",
			code: "abc123",
			want: "abc123",
		},
		{
			name: "valid code with underscore",
			code: "my_code",
			want: "my_code",
		},
		{
			name: "valid code with hyphen",
			code: "my-code",
			want: "my-code",
		},
		{
			name: "uppercase is normalized to lowercase",
			code: "Aaa",
			want: "aaa",
		},
		{
			name: "surrounding whitespace is trimmed",
			code: "  abc  ",
			want: "abc",
		},
		{
			name: "single character",
			code: "a",
			want: "a",
		},
		{
			name: "maximum length",
			code: strings.Repeat("a", MaxShortCodeLength),
			want: strings.Repeat("a", MaxShortCodeLength),
		},
		{
			name:    "empty code",
			code:    "",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "too long",
			code:    strings.Repeat("a", MaxShortCodeLength+1),
			wantErr: ErrInvalidCode,
		},
		{
			name:    "special characters",
			code:    ")*",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "contains slash",
			code:    "a/b",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "contains space",
			code:    "a b",
			wantErr: ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := NewShortCode(tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, sc.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sc.String())
		})
	}
}

func TestShortCode_Equals(t *testing.T) {
	a, err := NewShortCode("abc")
	require.NoError(t, err)

	b, err := NewShortCode("ABC")
	require.NoError(t, err)

	c, err := NewShortCode("def")
	require.NoError(t, err)

	assert.True(t, a.Equals(b), "codes are equal regardless of input case")
	assert.False(t, a.Equals(c))
}
