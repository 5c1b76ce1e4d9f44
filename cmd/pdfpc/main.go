package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, usage.usage)
		}
		os.Exit(1)
	}
}
