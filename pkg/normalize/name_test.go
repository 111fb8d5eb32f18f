package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"already canonical", "Smith, John", "Smith, John"},
		{"given family order", "John Smith", "Smith, John"},
		{"single name", "Planck", "Planck"},
		{"lowercase single name", "planck", "Planck"},
		{"all caps", "SMITH, JOHN", "Smith, John"},
		{"all caps unordered", "JOHN SMITH", "Smith, John"},
		{"internal whitespace", "  Jane   Doe ", "Doe, Jane"},
		{"mixed case kept", "McMillan, Edwin", "McMillan, Edwin"},
		{"family particle kept", "de Broglie, Louis", "de Broglie, Louis"},
		{"uppercased particle lowered", "DE BROGLIE, LOUIS", "de Broglie, Louis"},
		{"initials", "Smith, J.R.", "Smith, J.R."},
		{"hyphenated family", "SMITH-JONES, ANNA", "Smith-Jones, Anna"},
		{"comma with empty given", "Smith,", "Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func TestName_Deterministic(t *testing.T) {
	first := Name("JOHN SMITH")
	second := Name("JOHN SMITH")
	assert.Equal(t, first, second)
}
