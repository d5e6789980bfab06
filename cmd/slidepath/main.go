package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pdrpinto/slidepath/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	log := inv.NewLogger(os.Stderr)

	result, execErr := cli.Execute(ctx, inv, os.Stdout, log)
	stop()
	if execErr != nil {
		log.WithError(execErr).Error("run aborted")
	}
	os.Exit(result.ExitCode)
}
