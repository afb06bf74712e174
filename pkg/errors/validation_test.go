package errors

import (
	"testing"
)

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "sales", false},
		{"valid underscore", "unit_price", false},
		{"valid dotted", "stats.mean", false},
		{"valid unicode", "销量", false},
		{"valid leading underscore", "_y", false},

		{"empty", "", true},
		{"too long", "a" + string(make([]byte, 300)), true},
		{"leading digit", "1st", true},
		{"operator", "a*b", true},
		{"space", "unit price", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFieldName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidEncoding) {
				t.Errorf("ValidateFieldName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidEncoding)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid file", "data.csv", false},
		{"valid nested", "data/aapl.csv", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "data/../../secret", true},
		{"backslash", "data\\file.csv", true},
		{"null byte", "data\x00.csv", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"long hex", "#5B8FF9", false},
		{"lower hex", "#5b8ff9", false},
		{"short hex", "#fff", false},

		{"empty", "", true},
		{"missing hash", "5B8FF9", true},
		{"named color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
