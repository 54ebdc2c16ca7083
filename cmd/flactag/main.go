package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "flactag:", err)
		}
		os.Exit(1)
	}
}
