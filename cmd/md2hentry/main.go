package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-hentry/cmd/md2hentry/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
