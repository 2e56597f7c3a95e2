package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/stigoleg/clocktime/internal/cli"
)

// This small tool generates shell completions and a man page from the root
// command using cobra's generators.

func main() {
	root := cli.NewRootCommand("docs")

	if err := writeCompletions(root, filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(root, "man"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeCompletions(root *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	var bash bytes.Buffer
	if err := root.GenBashCompletionV2(&bash, true); err != nil {
		return fmt.Errorf("bash completion: %w", err)
	}
	if err := os.WriteFile(filepath.Join(base, cli.AppName+".bash"), bash.Bytes(), 0o644); err != nil {
		return err
	}

	var zsh bytes.Buffer
	if err := root.GenZshCompletion(&zsh); err != nil {
		return fmt.Errorf("zsh completion: %w", err)
	}
	if err := os.WriteFile(filepath.Join(base, "_"+cli.AppName), zsh.Bytes(), 0o644); err != nil {
		return err
	}

	var fish bytes.Buffer
	if err := root.GenFishCompletion(&fish, true); err != nil {
		return fmt.Errorf("fish completion: %w", err)
	}
	return os.WriteFile(filepath.Join(base, cli.AppName+".fish"), fish.Bytes(), 0o644)
}

func writeMan(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var page bytes.Buffer
	if err := genMan(root, &page); err != nil {
		return fmt.Errorf("man page: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, cli.AppName+".1"), page.Bytes(), 0o644)
}

func genMan(root *cobra.Command, w io.Writer) error {
	// The version flag is only registered on first execution.
	root.InitDefaultVersionFlag()

	header := &doc.GenManHeader{
		Title:   strings.ToUpper(cli.AppName),
		Section: "1",
		Source:  cli.AppName,
		Manual:  "User Commands",
	}
	return doc.GenMan(root, header, w)
}
