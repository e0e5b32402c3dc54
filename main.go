/*
File : kodi-script-go/main.go
*/

// The kodi command runs KodiScript programs: execute a script file,
// start the interactive shell, or dump a file's token stream.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/issadicko/kodi-script-go/file"
	"github.com/issadicko/kodi-script-go/lexer"
	"github.com/issadicko/kodi-script-go/repl"
)

const version = "0.1.0"

const banner = `  _  __         _ _
 | |/ /___   __| (_)
 | ' // _ \ / _' | |
 | . \ (_) | (_| | |
 |_|\_\___/ \__,_|_|`

var errColor = color.New(color.FgRed)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kodi",
		Short:         "KodiScript embeddable scripting language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run <script.kodi>",
		Short: "Execute a script file and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := file.RunFile(args[0])
			if err != nil {
				return err
			}
			for _, line := range result.Output {
				fmt.Println(line)
			}
			if !result.OK() {
				for _, msg := range result.Errors {
					errColor.Fprintln(os.Stderr, msg)
				}
				os.Exit(1)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.NewRepl(banner, version, "kodi> ").Start()
		},
	}

	tokensCmd := &cobra.Command{
		Use:   "tokens <script.kodi>",
		Short: "Dump the token stream of a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lex := lexer.NewLexer(string(data))
			for _, token := range lex.ConsumeTokens() {
				fmt.Printf("%3d:%-3d %s\n", token.Line, token.Column, token)
			}
			for _, msg := range lex.Errors {
				errColor.Fprintln(os.Stderr, msg)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, replCmd, tokensCmd)

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
