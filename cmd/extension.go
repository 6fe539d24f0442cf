package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strconv"
)

// builtins are the commands registered by the commander itself.
var builtins = []string{"help", "flags", "commands"}

// IsCommand reports whether name is a stockhist subcommand.
func IsCommand(name string) bool {
	if slices.Contains(builtins, name) {
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external stockhist-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath("stockhist-" + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+*dataDir,
		EnvLogLevel+"="+*logLevel,
		EnvRateLimit+"="+strconv.Itoa(*rateLimit),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}
