package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		name string
		lat  bool
		dec  float64
		want string
	}{
		{"north", true, 33.94249722222222, "33°56′32.99″N"},
		{"south", true, -33.94249722222222, "33°56′32.99″S"},
		{"west", false, -118.40805, "118°24′28.98″W"},
		{"east", false, 118.40805, "118°24′28.98″E"},
		{"equator", true, 0, "0°0′00.00″N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lat {
				assert.Equal(t, tt.want, formatLat(tt.dec))
			} else {
				assert.Equal(t, tt.want, formatLon(tt.dec))
			}
		})
	}
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
