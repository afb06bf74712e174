package encode

import (
	"fmt"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/errors"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{"pair", "a*b", Position{X: "a", Y: "b"}, false},
		{"spaces", " genre * sold ", Position{X: "genre", Y: "sold"}, false},
		{"x only", "a", Position{X: "a"}, false},
		{"dotted", "stats.day*stats.value", Position{X: "stats.day", Y: "stats.value"}, false},
		{"quoted", `"release date"*'unit price'`, Position{X: "release date", Y: "unit price"}, false},
		{"unicode", "类别*销量", Position{X: "类别", Y: "销量"}, false},

		{"empty", "", Position{}, true},
		{"trailing cross", "a*", Position{}, true},
		{"three fields", "a*b*c", Position{}, true},
		{"empty quoted", `""*b`, Position{}, true},
		{"bad token", "a+b", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidEncoding) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidEncoding)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{X: "a", Y: "b"}).String(); got != "a*b" {
		t.Errorf("String() = %q, want a*b", got)
	}
	if got := (Position{X: "a"}).Fields(); len(got) != 1 {
		t.Errorf("Fields() = %v, want 1 field", got)
	}
}

func ExampleParsePosition() {
	pos, _ := ParsePosition("genre*sold")
	fmt.Println(pos.X, pos.Y)
	// Output: genre sold
}
