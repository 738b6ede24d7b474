package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/echo-journal/cmd"
)

func main() {
	// An interrupt cancels the command instead of killing the process, so an
	// open session still re-encrypts the journal on its way out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	err := cmd.JournalCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Commands print their own message; only cobra usage errors reach here unprinted.
		if !cmd.Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
