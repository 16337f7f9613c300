package templating

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Engine expands templates using value files and explicit
// variables.
type Engine struct {
	StartTag   string
	EndTag     string
	ValueFiles []string
}

// Expand reads a template, substitutes values, and writes
// the result. If tplPath is empty it reads from stdin; if
// outPath is empty it writes to stdout. If executable is
// true the output file receives mode 0777 instead of 0666.
//
// Values come from ValueFiles first, then from vars given
// as NAME=VALUE, which override file values. A failure to
// close the output file is reported.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	vars []string,
	executable bool,
) (retErr error) {
	const errCtx = "expanding template"

	values, err := LoadValues(en.ValueFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := resolveVars(vars, values); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tplContent, err := readTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out, closer, err := openOutput(outPath, executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer func() {
			if closeErr := closer(); closeErr != nil && retErr == nil {
				retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
			}
		}()
	}

	_, err = io.WriteString(
		out, en.ExpandString(string(tplContent), values),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// ExpandString substitutes values into tpl using the
// engine's tags. Unknown markers are preserved.
func (en *Engine) ExpandString(
	tpl string,
	values map[string]string,
) string {
	startTag, endTag := en.tags()

	return expand(tpl, startTag, endTag, mapLookup(values))
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (en *Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = defaultStartTag
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = defaultEndTag
	}

	return startTag, endTag
}

// resolveVars processes NAME=VALUE variables and stores
// them in values, overriding anything loaded from files.
func resolveVars(
	vars []string,
	values map[string]string,
) error {
	const errCtx = "resolving variables"

	for _, vr := range vars {
		parts := strings.SplitN(vr, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf(
				"%s: variable must be NAME=VALUE, got %s",
				errCtx, vr,
			)
		}

		values[parts[0]] = parts[1]
	}

	return nil
}

// readTemplate reads the template from a file path. If
// tplPath is empty it reads from stdin.
func readTemplate(tplPath string) ([]byte, error) {
	const errCtx = "reading template"

	if tplPath != "" {
		content, err := os.ReadFile(tplPath) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return content, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading stdin: %w", errCtx, err,
		)
	}

	return content, nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns stdout. The returned
// closer function must be called to finalize the file
// (may be nil for stdout); its error is the close error.
func openOutput(
	outPath string,
	executable bool,
) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	if outPath == "" {
		return os.Stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI flags
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, func() error {
		if err := fi.Close(); err != nil {
			return fmt.Errorf("closing output %s: %w", outPath, err)
		}

		return nil
	}, nil
}
