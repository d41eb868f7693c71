package model

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain-integer", input: "1", want: 1},
		{name: "surrounding-whitespace", input: " 42 ", want: 42},
		{name: "negative-is-representable", input: "-3", want: -3},
		{name: "letters", input: "one", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("expected %v, but got: %v", ErrInvalidID, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, but got: %d", tt.want, got)
			}
		})
	}
}
