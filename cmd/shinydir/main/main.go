package main

import (
	"os"

	"github.com/arthur-debert/shinydir/cmd/shinydir"
	"github.com/arthur-debert/shinydir/pkg/display"
	"github.com/arthur-debert/shinydir/pkg/style"
)

func main() {
	rootCmd := shinydir.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		display.New(os.Stdout, os.Stderr, style.Options{Color: true, Unicode: true}).Error(err)
		os.Exit(1)
	}
}
