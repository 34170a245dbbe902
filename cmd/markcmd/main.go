package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iw2rmb/markcmd"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errUsage = errors.New("usage")

const usage = `usage: markcmd <command> [flags]

commands:
  edit   [-config dir] [-line-numbers] file   edit a markdown file in the terminal
  apply  -cmd name [-sel range] [-url url] [-image url] [-diff] [-w] file
                                             run one formatting command on a file
  embed  [-clipboard]                        print the directive for an embed snippet
  version                                    print version information
`

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "markcmd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "edit":
		return runEdit(args[1:])
	case "apply":
		return runApply(args[1:], stdout)
	case "embed":
		return runEmbed(args[1:], stdin, stdout)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "markcmd %s\n", markcmd.Version(version))
		fmt.Fprintf(stdout, "  commit: %s\n", commit)
		fmt.Fprintf(stdout, "  built:  %s\n", date)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
