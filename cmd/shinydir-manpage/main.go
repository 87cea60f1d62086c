package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/shinydir/cmd/shinydir"
	"github.com/arthur-debert/shinydir/internal/version"
)

func main() {
	rootCmd := shinydir.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SHINYDIR",
		Section: "1",
		Source:  "shinydir " + version.Version,
		Manual:  "shinydir manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
