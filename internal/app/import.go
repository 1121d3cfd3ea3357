package app

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/markermap/markermap/internal/importer"
	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/store/file"
	"github.com/markermap/markermap/internal/validate"
)

// runImport replaces the dataset file with the contents of a TSV export.
// The built collection still has to pass the schema before it is written.
func (a *App) runImport(args []string) error {
	fs := pflag.NewFlagSet("import", pflag.ContinueOnError)
	datasetPath := fs.String("dataset", a.cfg.DatasetFile, "path to the marker dataset to replace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: markermap import [--dataset path] <file.tsv>")
	}

	col, err := importer.Import(fs.Arg(0))
	if err != nil {
		return err
	}

	data, err := col.Encode()
	if err != nil {
		return err
	}
	if violations := validate.Bytes(data); len(violations) > 0 {
		for _, v := range violations {
			a.logger.Error("import schema violation", logger.String("violation", v))
		}
		return fmt.Errorf("imported data is invalid: %s", violations[0])
	}

	if err := file.NewStore(*datasetPath).Save(col); err != nil {
		return err
	}

	a.logger.Info("dataset replaced from import",
		logger.String("source", fs.Arg(0)),
		logger.String("dataset", *datasetPath),
		logger.Int("markers", len(col.Features)))
	return nil
}
