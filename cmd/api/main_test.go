package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "migrate", "grant", "purge"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup(flagConfig))
}

func TestGrantCommand_RequiresFlags(t *testing.T) {
	root := newRootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"grant", "--email", "user@example.com"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), flagAmount)
}

func TestDisabledGateway(t *testing.T) {
	var g disabledGateway

	_, err := g.Initialize(context.Background(), gateway.InitializeRequest{Reference: "ref-1"})
	assert.ErrorIs(t, err, errPaymentsDisabled)

	_, err = g.Verify(context.Background(), "ref-1")
	assert.ErrorIs(t, err, errPaymentsDisabled)

	assert.False(t, g.VerifySignature([]byte(`{}`), "abc"))
}
