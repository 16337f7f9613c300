package templating

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

// LoadValues reads value files and merges them into a single map. Later
// files override earlier ones. The format is chosen by extension:
//
//   - .json: a flat JSON object
//   - .yaml, .yml: a flat YAML mapping
//   - anything else: workspace status lines "KEY VALUE", split at the
//     first space; lines without a space are silently skipped
//
// JSON and YAML values must be scalars; they are converted to their
// textual form.
func LoadValues(paths []string) (map[string]string, error) {
	const errCtx = "loading values"

	values := make(map[string]string)

	for _, pa := range paths {
		content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		var parse func([]byte, map[string]string) error

		switch strings.ToLower(filepath.Ext(pa)) {
		case ".json":
			parse = parseJSONValues
		case ".yaml", ".yml":
			parse = parseYAMLValues
		default:
			parse = parseStatusValues
		}

		if err := parse(content, values); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", errCtx, pa, err)
		}
	}

	return values, nil
}

func parseJSONValues(content []byte, into map[string]string) error {
	const errCtx = "parsing json"

	var raw map[string]interface{}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return mergeScalars(errCtx, raw, into)
}

func parseYAMLValues(content []byte, into map[string]string) error {
	const errCtx = "parsing yaml"

	var raw map[string]interface{}

	if err := yaml.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := mergeScalars(errCtx, raw, into); err != nil {
		return err
	}

	// Typed decoding reformats numbers (1.10 becomes 1.1, 0x1F
	// becomes 31); keep their text as written instead.
	var nodes map[string]ast.Node

	if err := yaml.Unmarshal(content, &nodes); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for key, node := range nodes {
		switch node.(type) {
		case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode,
			*ast.InfinityNode, *ast.NanNode:
			into[key] = node.GetToken().Value
		}
	}

	return nil
}

// parseStatusValues handles workspace status files: one "KEY VALUE"
// pair per line, first space as delimiter.
func parseStatusValues(content []byte, into map[string]string) error {
	for _, line := range strings.Split(string(content), "\n") {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 2 {
			into[parts[0]] = parts[1]
		}
	}

	return nil
}

func mergeScalars(
	errCtx string,
	raw map[string]interface{},
	into map[string]string,
) error {
	for key, val := range raw {
		str, ok := scalarString(val)
		if !ok {
			return fmt.Errorf(
				"%s: value for key %q is not a scalar",
				errCtx, key,
			)
		}

		into[key] = str
	}

	return nil
}

func scalarString(val interface{}) (string, bool) {
	switch tv := val.(type) {
	case nil:
		return "", true
	case string:
		return tv, true
	case json.Number:
		return tv.String(), true
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return "", false
	default:
		return fmt.Sprint(tv), true
	}
}
