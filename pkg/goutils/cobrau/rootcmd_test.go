/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package cobrau

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/untillpro/goutils/logger"
)

func TestPrepareRootCmd(t *testing.T) {
	require := require.New(t)

	called := false
	sub := &cobra.Command{
		Use: "check",
		RunE: func(cmd *cobra.Command, args []string) error {
			called = true
			ApplyVerbosity(cmd)
			return nil
		},
	}
	root := PrepareRootCmd("graphcheck", "test", []string{"graphcheck", "check", "-v"}, "1.0", sub)
	require.NoError(ExecCommandAndCatchInterrupt(root))
	require.True(called)
	require.True(logger.IsVerbose())
	logger.SetLogLevel(logger.LogLevelInfo)

	t.Run("version", func(t *testing.T) {
		out := &bytes.Buffer{}
		root := PrepareRootCmd("graphcheck", "test", []string{"graphcheck", "version"}, "1.0")
		root.SetOut(out)
		require.NoError(root.Execute())
		require.Equal("graphcheck version 1.0\n", out.String())
	})
}

func TestSetLogLevel(t *testing.T) {
	require := require.New(t)
	require.NoError(SetLogLevel("Verbose"))
	require.True(logger.IsVerbose())
	require.NoError(SetLogLevel("info"))
	require.False(logger.IsVerbose())
	require.Error(SetLogLevel("loud"))
}
