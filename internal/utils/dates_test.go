package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain date", "2024-03-01", "2024-03-01", false},
		{"rfc3339", "2024-03-01T10:30:00Z", "2024-03-01", false},
		{"datetime without zone", "2024-03-01T10:30:00", "2024-03-01", false},
		{"not a date", "not-a-date", "", true},
		{"empty", "", "", true},
		{"bad month", "2024-13-01", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
