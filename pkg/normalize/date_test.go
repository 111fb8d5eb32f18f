package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"bare year", "2020", "2020"},
		{"year month", "2020-03", "2020-03"},
		{"year month slash", "2020/03", "2020-03"},
		{"full date", "2020-03-02", "2020-03-02"},
		{"full date slash", "2020/03/02", "2020-03-02"},
		{"full date dotted", "2020.03.02", "2020-03-02"},
		{"textual day month year", "2 March 2020", "2020-03-02"},
		{"textual abbreviated", "2 Mar 2020", "2020-03-02"},
		{"textual month day year", "March 2, 2020", "2020-03-02"},
		{"textual month year", "March 2020", "2020-03"},
		{"abbreviated month year", "Mar 2020", "2020-03"},
		{"rfc3339 timestamp", "2020-03-02T15:04:05Z", "2020-03-02"},
		{"padded input", "  2020-03-02  ", "2020-03-02"},
		{"unparseable passthrough", "circa 1970", "circa 1970"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

// Day precision must never be reduced to month or year precision by a less
// specific layout matching first.
func TestDate_PrecisionPreserved(t *testing.T) {
	assert.Equal(t, "2020-03-02", Date("2020-03-02"))
	assert.Equal(t, "2020-03", Date("2020-03"))
	assert.Equal(t, "2020", Date("2020"))
}
