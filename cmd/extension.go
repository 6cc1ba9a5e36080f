package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/pricejobs/config"
)

// Environment passed to extensions. The names are the configuration
// variables, so that an extension loading the configuration sees the same
// settings as pjobs.
const (
	EnvConfigFile = config.EnvFile
	EnvLedgerFile = "PRICEJOBS_LEDGER"
	EnvVerbose    = "PRICEJOBS_VERBOSE"
)

// ExtensionPrefix prefixes the name of extension binaries: "pjobs fetch"
// runs "pjobs-fetch" when fetch is not a pjobs command.
const ExtensionPrefix = "pjobs-"

// RunExtension attempts to find and execute an external pjobs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath(ExtensionPrefix + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the environment with the global flags that are set.
func extensionEnv() []string {
	env := os.Environ()
	if *configFile != "" {
		env = append(env, EnvConfigFile+"="+*configFile)
	}
	if *ledgerFile != "" {
		env = append(env, EnvLedgerFile+"="+*ledgerFile)
	}
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*verbose))
	return env
}
