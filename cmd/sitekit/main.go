package main

import (
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/viant/sitekit/cli"
	"os"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
