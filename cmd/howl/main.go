package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgomes/howlscript/howl"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return runREPL()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	debug := fs.Bool("debug", false, "trace stack and scope depth after each line")
	eval := fs.String("e", "", "execute a line of source after the script")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 && *eval == "" {
		return errors.New("howl run: script path required")
	}

	interp := howl.New()
	interp.Debug = *debug

	if len(remaining) > 0 {
		scriptPath, err := filepath.Abs(remaining[0])
		if err != nil {
			return fmt.Errorf("resolve script path: %w", err)
		}
		if err := interp.ExecFile(scriptPath); err != nil {
			return err
		}
	}
	if *eval != "" {
		if err := interp.ExecLine(*eval); err != nil {
			return err
		}
	}

	if top, err := interp.Stack().Peek(); err == nil {
		fmt.Println(top.String())
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [run|repl|help]\n", prog)
	fmt.Fprintf(os.Stderr, "  %s run [flags] <script>\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -debug")
	fmt.Fprintln(os.Stderr, "    trace stack and scope depth after each line")
	fmt.Fprintln(os.Stderr, "  -e <source>")
	fmt.Fprintln(os.Stderr, "    execute a line of source after the script")
	fmt.Fprintf(os.Stderr, "  %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "    start the interactive loop (default with no arguments)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
