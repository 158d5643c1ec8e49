package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionsOf(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[appearance]",
		"[database]",
		"[downloads]",
		"[logging]",
		"[notifications]",
		"[shell]",
	}, sectionsOf(string(content)))
	assert.Contains(t, string(content), "deep_link_scheme = 'fluxer'")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[shell]
deep_link_scheme = 'fluxer'

[logging]
level = 'info'

[shell.extra]
a = 1

[database]
path = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[database]", "[logging]", "[shell]", "[shell.extra]"}, sectionsOf(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n"))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
