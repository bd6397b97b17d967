package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/quill"
)

type tokenOut struct {
	Kind   string   `yaml:"kind"`
	Params []string `yaml:"params,omitempty,flow"`
}

func newTokenizeCmd(a *app) *cobra.Command {
	var format string
	var strict bool

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the token stream of tagged text (stdin when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tokens, diags := quill.TokenizeWithDiagnostics(text)
			for _, d := range diags {
				a.logger.Warn(d.Error(), "tag", d.Tag, "offset", d.Offset)
			}
			if err := writeTokens(cmd.OutOrStdout(), tokens, format); err != nil {
				return err
			}
			if strict && len(diags) > 0 {
				return fmt.Errorf("quill: %d unrecognized tag(s)", len(diags))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any tag is unrecognized")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("quill: read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("quill: read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeTokens(w io.Writer, tokens []quill.Token, format string) error {
	switch format {
	case "text":
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(w, tok.String()); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		out := make([]tokenOut, len(tokens))
		for i, tok := range tokens {
			out[i] = tokenOut{Kind: tok.Kind.String(), Params: tok.Params}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("quill: unknown format %q", format)
	}
}
