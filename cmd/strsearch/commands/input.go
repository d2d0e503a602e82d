package commands

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// readText returns the text to search: the contents of path, text when set,
// or standard input. The result is never nil.
func readText(cmd *cobra.Command, path string, text *string) ([]byte, error) {
	switch {
	case path != "" && text != nil:
		return nil, errors.WithHint(
			errors.New("both a file and --text were given"),
			"pass the text either as a file argument or with --text")
	case path == "-":
		return readAll(cmd.InOrStdin())
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		return data, nil
	case text != nil:
		return []byte(*text), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read standard input")
	}
	return data, nil
}

// decodePattern interprets Go escape sequences such as \x00 or \n in p when
// escaped is set.
func decodePattern(p string, escaped bool) ([]byte, error) {
	if !escaped {
		return []byte(p), nil
	}
	s, err := strconv.Unquote(`"` + p + `"`)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "invalid escaped pattern %q", p),
			`use Go string escapes, for example \x00 or \t`)
	}
	return []byte(s), nil
}

// textFlag returns a pointer to the value of the --text flag, or nil when
// it was not given.
func textFlag(cmd *cobra.Command, value *string) *string {
	if cmd.Flags().Changed("text") {
		return value
	}
	return nil
}
