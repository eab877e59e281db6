package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingrediq/docintel-cli/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a completed run as xlsx, csv, or json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "export")
		}
		if run.Result == nil {
			return eris.Errorf("run %s has no result (status %s)", run.ID, run.Status)
		}

		switch exportFormat {
		case "xlsx":
			if exportOut == "" {
				return eris.New("--out is required for xlsx export")
			}
			if err := export.WriteWorkbook(exportOut, run.Documents, run.Result); err != nil {
				return err
			}
		case "csv":
			w := os.Stdout
			if exportOut != "" {
				f, err := os.Create(exportOut)
				if err != nil {
					return eris.Wrapf(err, "create %s", exportOut)
				}
				defer f.Close() //nolint:errcheck
				w = f
			}
			if err := export.AnalysisCSV(w, run.Result); err != nil {
				return err
			}
		case "json":
			out, err := export.AnalysisJSON(run.Result)
			if err != nil {
				return err
			}
			if exportOut == "" {
				_, err = os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(exportOut, out, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", exportOut)
			}
		default:
			return eris.Errorf("unsupported format: %s (want xlsx, csv, or json)", exportFormat)
		}

		if exportOut != "" {
			zap.L().Info("export written",
				zap.String("run_id", run.ID),
				zap.String("format", exportFormat),
				zap.String("path", exportOut),
			)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "export format (xlsx, csv, json)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (stdout for csv/json when omitted)")
	rootCmd.AddCommand(exportCmd)
}
