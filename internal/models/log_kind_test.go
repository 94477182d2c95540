package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogKind_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    LogKind
		wantErr bool
	}{
		{
			name:    "mcutils",
			kind:    LogKindMcUtils,
			wantErr: false,
		},
		{
			name:    "ethtool",
			kind:    LogKindEthtool,
			wantErr: false,
		},
		{
			name:    "emon is not supported",
			kind:    LogKind("emon"),
			wantErr: true,
		},
		{
			name:    "empty",
			kind:    LogKind(""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.kind.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogKind_CacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mcutils/00ff00ff00ff00ff", LogKindMcUtils.CacheKey("00ff00ff00ff00ff"))
	assert.Equal(t, "ethtool/abc", LogKindEthtool.CacheKey("abc"))
}

func TestLogKind_CacheKey_InvalidKind(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		LogKind("invalid").CacheKey("abc")
	}, "CacheKey should panic on invalid LogKind")
}
