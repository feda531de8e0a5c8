package cli

import (
	"testing"

	"github.com/clarkmcc/surrealdb/internal/cli/config"
	clitest "github.com/clarkmcc/surrealdb/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"version", "quote", "plain", "key", "ident", "rid", "render", "kinds", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"config", "compat", "output", "verbose", "workers"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootLoadsConfig(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	clitest.SetupConfigDir(t, "output: table\nworkers: 3\n")

	res := clitest.Execute(t, NewRootCmd(), "", "--verbose", "ident", "1")
	require.NoError(t, res.Err)

	cfg := config.GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Verbose)

	clitest.AssertContains(t, res.Output(), "`1`")
	clitest.AssertContains(t, res.Output(), "(1 rows)")
	clitest.AssertContains(t, res.ErrorOutput(), "using config file")
}

func TestRootFlagOverridesConfig(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	clitest.SetupConfigDir(t, "output: table\n")

	res := clitest.Execute(t, NewRootCmd(), "", "-o", "text", "key", "a b")
	require.NoError(t, res.Err)
	clitest.AssertLines(t, res.Output(), `"a b"`)
	clitest.AssertNotContains(t, res.Output(), "rows")
}

func TestCompletionCommand(t *testing.T) {
	res := clitest.Execute(t, NewRootCmd(), "", "completion", "bash")
	require.NoError(t, res.Err)
	clitest.AssertContains(t, res.Output(), "surql")

	res = clitest.Execute(t, NewRootCmd(), "", "completion", "tcsh")
	assert.Error(t, res.Err)
}
