package editor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditor_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		cliEditor string
		env       map[string]string
		want      string
	}{
		{
			name:      "flag wins",
			cliEditor: "flag-editor",
			env:       map[string]string{"HYPERFOCUS_EDITOR": "hf", "VISUAL": "visual", "EDITOR": "editor"},
			want:      "flag-editor",
		},
		{
			name: "HYPERFOCUS_EDITOR before VISUAL",
			env:  map[string]string{"HYPERFOCUS_EDITOR": "hf", "VISUAL": "visual", "EDITOR": "editor"},
			want: "hf",
		},
		{
			name: "VISUAL before EDITOR",
			env:  map[string]string{"HYPERFOCUS_EDITOR": "", "VISUAL": "visual", "EDITOR": "editor"},
			want: "visual",
		},
		{
			name: "EDITOR last",
			env:  map[string]string{"HYPERFOCUS_EDITOR": "", "VISUAL": "", "EDITOR": "editor"},
			want: "editor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			editor, args := findEditor("/tmp/settings.json", tt.cliEditor)

			assert.Equal(t, tt.want, editor)
			assert.Equal(t, []string{"/tmp/settings.json"}, args)
		})
	}
}

func TestOpen_MissingPath(t *testing.T) {
	err := NewOpener().Open(context.Background(), filepath.Join(t.TempDir(), "nope.json"), "true")
	assert.ErrorContains(t, err, "path does not exist")
}

func TestOpen_RunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses the true command")
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	err := NewOpener().Open(context.Background(), path, "true")
	assert.NoError(t, err)
}
