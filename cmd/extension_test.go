package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension writes an executable shell script named pjobs-<name> in a
// new directory put first in PATH.
func writeExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in tests")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("failed to write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// captureStdout redirects os.Stdout to a file during f.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	out, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	stdout := os.Stdout
	os.Stdout = out
	defer func() { os.Stdout = stdout }()
	f()

	content, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestExtensionMechanism(t *testing.T) {
	writeExtension(t, "hello", `echo "args=$*"
echo "`+EnvLedgerFile+`=$`+EnvLedgerFile+`"
echo "`+EnvVerbose+`=$`+EnvVerbose+`"
`)

	oldLedger, oldVerbose := *ledgerFile, *verbose
	defer func() { *ledgerFile, *verbose = oldLedger, oldVerbose }()
	*ledgerFile = "random_ledger.jsonl"
	*verbose = true

	var found bool
	var code int
	output := captureStdout(t, func() {
		found, code = RunExtension("hello", []string{"a", "b"})
	})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}

	for _, want := range []string{
		"args=a b",
		EnvLedgerFile + "=random_ledger.jsonl",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestExtensionExitCode(t *testing.T) {
	writeExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("nothing-here", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}

func TestIsCommand(t *testing.T) {
	for name, want := range map[string]bool{"jobs": true, "help": true, "topic": true, "fetch": false} {
		if got := IsCommand(name); got != want {
			t.Errorf("IsCommand(%q) = %v, want %v", name, got, want)
		}
	}
}
