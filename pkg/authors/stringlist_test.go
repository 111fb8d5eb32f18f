package authors

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"scalar", `ids: X1`, StringList{"X1"}},
		{"sequence", "ids:\n- X1\n- X2", StringList{"X1", "X2"}},
		{"empty scalar", `ids: ""`, nil},
		{"absent", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				IDs StringList `yaml:"ids"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &holder))
			assert.Equal(t, tt.want, holder.IDs)
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"scalar", `{"ids":"X1"}`, StringList{"X1"}},
		{"sequence", `{"ids":["X1","X2"]}`, StringList{"X1", "X2"}},
		{"empty scalar", `{"ids":""}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				IDs StringList `json:"ids"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &holder))
			assert.Equal(t, tt.want, holder.IDs)
		})
	}
}
