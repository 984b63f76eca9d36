// Command labelgen renders label PDFs from a JSON template and a JSON
// inputs file.
//
// # Installation
//
//	go install github.com/kantina/labelgen/cmd/labelgen@latest
//
// # Usage
//
// Render a single 80x40 mm label:
//
//	labelgen render --template label.json --inputs order.json \
//	    --width 80 --height 40 -o label.pdf
//
// When the inputs file holds a JSON array, one page is generated per entry
// in array order:
//
//	labelgen render --template label.json --inputs orders.json \
//	    --width 100 --height 50 -o batch.pdf
//
// Elements that cannot be rendered (bad barcode payload, undecodable
// image) are logged and degrade to placeholders; the command only fails
// when no document could be produced at all.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kantina/labelgen"
	"github.com/kantina/labelgen/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "labelgen",
		Short:         "Render label PDFs from declarative JSON templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		templatePath string
		inputsPath   string
		outputPath   string
		widthMM      float64
		heightMM     float64
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template against one or more input sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			tplData, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}
			tpl, err := schema.ParseTemplate(tplData)
			if err != nil {
				return err
			}

			inData, err := os.ReadFile(inputsPath)
			if err != nil {
				return fmt.Errorf("reading inputs: %w", err)
			}

			gen := labelgen.New(labelgen.WithLogger(logger))

			var (
				pdf   []byte
				warns []labelgen.Warning
			)
			if isJSONArray(inData) {
				ins, err := schema.ParseInputsList(inData)
				if err != nil {
					return err
				}
				pdf, warns, err = gen.GenerateBatch(tpl, ins, widthMM, heightMM)
				if err != nil {
					return err
				}
				logger.Info("batch rendered", zap.Int("labels", len(ins)))
			} else {
				in, err := schema.ParseInputs(inData)
				if err != nil {
					return err
				}
				pdf, warns, err = gen.Generate(tpl, in, widthMM, heightMM)
				if err != nil {
					return err
				}
			}

			for _, w := range warns {
				logger.Warn("degraded element", zap.String("warning", w.String()))
			}

			if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			logger.Info("wrote pdf",
				zap.String("path", outputPath),
				zap.Int("bytes", len(pdf)),
				zap.Int("warnings", len(warns)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template JSON file (required)")
	cmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "inputs JSON file, object or array (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "label.pdf", "output PDF path")
	cmd.Flags().Float64Var(&widthMM, "width", 80, "page width in mm")
	cmd.Flags().Float64Var(&heightMM, "height", 40, "page height in mm")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("template")
	cmd.MarkFlagRequired("inputs")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// isJSONArray reports whether data's first significant byte opens an array.
func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
