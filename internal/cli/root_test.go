package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CommandTree(t *testing.T) {
	root := New()
	assert.Equal(t, "microlog", root.Name())

	want := []string{"add", "list", "tags", "people", "idea", "ideas", "highlight", "delete", "location", "status", "unlock", "lock", "shell"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing command %q", name)
	}

	for _, flag := range []string{"config", "backend", "vault", "kv-path", "remote", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}
