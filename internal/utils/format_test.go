package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1250, "1.25K"},
		{10500, "10.5K"},
		{3400000, "3.4M"},
		{2000000000, "2G"},
		{-1500, "-1.5K"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeCount(tt.in))
		})
	}
}
