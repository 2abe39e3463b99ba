package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args opens the TUI",
			args: nil,
			want: false,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "subcommand help",
			args: []string{"add", "-h"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "timer"},
			want: true,
		},
		{
			name: "config template",
			args: []string{"config", "template"},
			want: true,
		},
		{
			name: "config show needs data",
			args: []string{"config", "show"},
			want: false,
		},
		{
			name: "task command",
			args: []string{"add", "Buy milk"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}
