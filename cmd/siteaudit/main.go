// Command siteaudit audits a static site's build output against size and
// content budgets, and generates deployment config for static hosts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "audit",
		short: "Audit a build output directory against budgets",
		usage: "siteaudit audit [-dir dist] [-config siteaudit.yaml] [-v]",
		long: `Walk the build output directory, run every rule check, write
build-report.json at the output root and print a summary.

Exits 0 when no error-severity violations were found; warnings never fail
the run. Running with no subcommand at all is the same as 'audit'.
`,
		run: runAudit,
	},
	{
		name:  "init",
		short: "Write a default siteaudit.yaml budget config",
		usage: "siteaudit init [-config siteaudit.yaml]",
		long: `Write the default budget configuration to siteaudit.yaml.

Errors if the file already exists.
`,
		run: runInit,
	},
	{
		name:  "deploy",
		short: "Generate deployment config for a static host",
		usage: "siteaudit deploy <platform> [-url URL] [-base /] [-out dir]",
		long: `Generate configuration files for a static hosting platform
(netlify, vercel, github, firebase, cloudflare).

The site URL and base path come from flags, then SITE_URL/BASE_PATH in the
environment (a .env file is honored), then an interactive prompt.
`,
		run: runDeploy,
	},
}

// errAuditFailed signals a failed audit whose summary was already printed.
var errAuditFailed = errors.New("audit failed")

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "siteaudit — build output auditor for static sites\n\n")
	fmt.Fprintf(w, "Usage:\n  siteaudit [command] [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'siteaudit help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "siteaudit: unknown command %q\n\nRun 'siteaudit help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 {
		// Bare invocation audits with defaults.
		return runAudit(nil)
	}
	if args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'siteaudit help' for usage.", args[0])
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		if !errors.Is(err, errAuditFailed) {
			fmt.Fprintf(os.Stderr, "siteaudit: %v\n", err)
		}
		os.Exit(1)
	}
}
