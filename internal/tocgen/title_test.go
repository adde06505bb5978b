package tocgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilenameToTitle(t *testing.T) {
	cases := []struct {
		name      string
		stem      string
		splitChar string
		want      string
	}{
		{"single word", "intro", "_", "Intro"},
		{"underscore split", "getting_started", "_", "Getting Started"},
		{"alternate split char", "getting-started", "-", "Getting Started"},
		{"digits keep place", "ch1", "_", "Ch1"},
		{"upper case folds", "README", "_", "Readme"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FilenameToTitle(tc.stem, tc.splitChar))
		})
	}
}
