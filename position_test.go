package veccursor

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Position(t *testing.T) {
	index, ok := At(4).Index()
	require.True(t, ok)
	require.Equal(t, 4, index)
	require.False(t, At(4).IsGhost())
	require.Equal(t, "4", At(4).String())

	_, ok = Ghost().Index()
	require.False(t, ok)
	require.True(t, Ghost().IsGhost())
	require.Equal(t, "ghost", Ghost().String())

	require.Equal(t, At(0), Position{})
}

func Test_DecodePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{"empty is ghost", "", Ghost(), false},
		{"zero", base64.RawURLEncoding.EncodeToString([]byte("0")), At(0), false},
		{"non-zero", base64.RawURLEncoding.EncodeToString([]byte("15")), At(15), false},
		{"not base64", "%%%", Position{}, true},
		{"not a number", base64.RawURLEncoding.EncodeToString([]byte("abc")), Position{}, true},
		{"negative", base64.RawURLEncoding.EncodeToString([]byte("-1")), Position{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePosition(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedToken)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Position_Token(t *testing.T) {
	for _, pos := range []Position{Ghost(), At(0), At(1), At(1024)} {
		t.Run(pos.String(), func(t *testing.T) {
			got, err := DecodePosition(pos.Token())
			require.NoError(t, err)
			require.Equal(t, pos, got)
		})
	}

	require.Empty(t, Ghost().Token())
	require.NotEmpty(t, At(0).Token())
}
