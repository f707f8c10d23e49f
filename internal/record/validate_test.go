package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidServiceName(t *testing.T) {
	tests := []struct {
		name    string
		service string
		want    bool
	}{
		{"simple lowercase", "github", true},
		{"mixed case", "GitHub", true},
		{"digits", "s3", true},
		{"underscore and hyphen", "valid-service_1", true},
		{"single char", "a", true},
		{"only separators", "_-", true},
		{"empty", "", false},
		{"space", "bad service", false},
		{"punctuation", "bad.service", false},
		{"bang", "bad service!", false},
		{"slash", "a/b", false},
		{"unicode letter", "sérvice", false},
		{"leading space", " github", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidServiceName(tt.service))
		})
	}
}
