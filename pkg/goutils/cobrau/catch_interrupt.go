/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

// Executes command with context which is cancelled on interrupt or termination signal
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("signal received, waiting for command to finish...")
	}
	return <-done
}
