package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spelled month", "2 Januari 2024", "2024-01-02"},
		{"spelled month lowercase", "17 agustus 1945", "1945-08-17"},
		{"old spelling nopember", "10 Nopember 2021", "2021-11-10"},
		{"single digit day", "5 Desember 2023", "2023-12-05"},
		{"slash numeric", "02/01/2024", "2024-01-02"},
		{"dash numeric", "2-1-2024", "2024-01-02"},
		{"already normalized", "2024-01-02", "2024-01-02"},
		{"trailing words", "2 Januari 2024 oleh Presiden", "2024-01-02"},
		{"bare number", "2", DateUnknown},
		{"bare year", "2024", DateUnknown},
		{"unknown month", "2 Frimaire 2024", DateUnknown},
		{"empty", "", DateUnknown},
		{"whitespace", "   ", DateUnknown},
		{"prose", "pada suatu hari", DateUnknown},
		{"month out of range", "2/13/2024", DateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}
