package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "hello world", want: "Hello world"},
		{in: "HELLO. HOW ARE YOU? fine!  thanks", want: "Hello. How are you? Fine!  Thanks"},
		{in: "  leading space", want: "  Leading space"},
		{in: "1. first item", want: "1. First item"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SentenceCase(tt.in))
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "  hello   world  ", want: "hello world"},
		{in: "line\n\n\tbreak", want: "line break"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Trim(tt.in))
		})
	}
}
