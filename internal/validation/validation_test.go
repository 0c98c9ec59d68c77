package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Phone string `binding:"omitempty,phone"`
	Open  string `binding:"required,hhmm"`
}

func TestCustomTags(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{"valid", sample{Phone: "9876543210", Open: "06:30"}, true},
		{"international phone", sample{Phone: "+919876543210", Open: "23:59"}, true},
		{"empty phone", sample{Open: "00:00"}, true},
		{"short phone", sample{Phone: "12345", Open: "06:30"}, false},
		{"letters in phone", sample{Phone: "98765abcde", Open: "06:30"}, false},
		{"hour out of range", sample{Open: "24:00"}, false},
		{"missing leading zero", sample{Open: "6:30"}, false},
		{"missing time", sample{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
