package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/byte4ever/byteutils/codec"
)

// report is the JSON document printed by the inspect
// command.
type report struct {
	Bytes     int    `json:"bytes"`
	Hex       string `json:"hex"`
	ValidUTF8 bool   `json:"valid_utf8"`
	Text      string `json:"text,omitempty"`
	Runes     int    `json:"runes,omitempty"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hexconv",
		Short: "Convert between bytes, hex text and UTF-8 strings",
		Long: `Convert between bytes, hex text and UTF-8 strings.

Examples:
  # Hex-encode a string
  hexconv encode hello

  # Hex-encode raw bytes from stdin
  hexconv encode < file.bin

  # Decode hex to a validated UTF-8 string
  hexconv decode --string 68656c6c6f

  # Describe a hex payload as JSON
  hexconv inspect e282ac`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newInspectCmd())

	return root
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text]",
		Short: "Hex-encode the argument, or stdin when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const errCtx = "encoding"

			var out string

			if len(args) == 1 {
				out = codec.StringToHex(args[0])
			} else {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("%s: reading stdin: %w", errCtx, err)
				}

				out = codec.BytesToHex(in)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			if err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	var asString bool

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hex text to raw bytes or a UTF-8 string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const errCtx = "decoding"

			in := strings.TrimSpace(args[0])

			if asString {
				str, err := codec.HexToString(in)
				if err != nil {
					return fmt.Errorf("%s: %w", errCtx, err)
				}

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), str); err != nil {
					return fmt.Errorf("%s: %w", errCtx, err)
				}

				return nil
			}

			raw, err := codec.HexToBytes(in)
			if err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			if _, err := cmd.OutOrStdout().Write(raw); err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(
		&asString, "string", "s", false,
		"Validate the result as UTF-8 and print it as text",
	)

	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Print a JSON description of a hex payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const errCtx = "inspecting"

			raw, err := codec.HexToBytes(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			rep := report{
				Bytes: len(raw),
				Hex:   codec.BytesToHex(raw),
			}

			if text, err := codec.BytesToString(raw); err == nil {
				rep.ValidUTF8 = true
				rep.Text = text
				rep.Runes = utf8.RuneCountInString(text)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			return nil
		},
	}
}
