package main

import (
	"fmt"
	"github.com/t-kuni/stignore/cmd"
	"os"
)

func main() {
	rootCmd, err := cmd.NewRootCommand()
	if err == nil {
		err = rootCmd.CobraCommand.Execute()
	}
	if err != nil {
		if rootCmd == nil || !rootCmd.Silent() {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
