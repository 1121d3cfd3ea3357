package app

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/markermap/markermap/internal/validate"
)

// runValidate checks a dataset file against the schema and prints the
// verdict. Any violation makes the command fail.
func (a *App) runValidate(args []string) error {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := a.cfg.DatasetFile
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset file: %w", err)
	}

	violations := validate.Bytes(data)
	if len(violations) == 0 {
		fmt.Printf("%s is valid\n", path)
		return nil
	}

	for _, v := range violations {
		fmt.Println(v)
	}
	return fmt.Errorf("%s: %d violation(s)", path, len(violations))
}
