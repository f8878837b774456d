package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Deetschoe/monkeycmd/internal/command"
)

func TestCommandReference_ListsEveryCommand(t *testing.T) {
	md := commandReference(command.OSMac)

	for _, c := range command.All() {
		require.Contains(t, md, string(c.ID))
		require.Contains(t, md, c.Name)
	}
}

func TestCommandReference_UsesPlatformBindings(t *testing.T) {
	mac := commandReference(command.OSMac)
	linux := commandReference(command.OSLinux)

	require.NotEqual(t, mac, linux)
	require.Contains(t, mac, "(mac)")
	require.Contains(t, linux, "(linux)")

	// Linux binds line start to Home, mac to a chord.
	cmd, err := command.Lookup(command.JumpLineStart)
	require.NoError(t, err)
	require.Contains(t, linux, strings.Join(cmd.BindingFor(command.OSLinux).Keys, " "))
}
