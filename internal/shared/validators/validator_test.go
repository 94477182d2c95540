package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selection struct {
	Sockets []string `json:"sockets" validate:"dive,required,max=16,dimension"`
	Label   string   `validate:"omitempty,dimension"`
}

func TestNew_DimensionTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   selection
		wantErr bool
		field   string
	}{
		{name: "empty selection", input: selection{}},
		{name: "socket and total", input: selection{Sockets: []string{"socket0", "Total"}}},
		{name: "whitespace", input: selection{Sockets: []string{"socket 0"}}, wantErr: true, field: "sockets[0]"},
		{name: "blank value", input: selection{Sockets: []string{"socket1", ""}}, wantErr: true, field: "sockets[1]"},
		{name: "too long", input: selection{Sockets: []string{"socket0123456789abc"}}, wantErr: true, field: "sockets[0]"},
		{name: "field without json tag", input: selection{Label: "a|b"}, wantErr: true, field: "Label"},
	}

	v := New()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			ve, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Len(t, ve, 1)
			assert.Equal(t, tt.field, ve[0].Field())
		})
	}
}
