package main

import (
	"fmt"
	"os"

	"github.com/amped-finance/amped-api/libs/go/config"
)

func main() {
	// flag defaults read the environment, so .env must be loaded first
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
