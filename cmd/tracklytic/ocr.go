package main

import (
	"encoding/json"
	"fmt"

	"tracklytic/internal/dto"
	"tracklytic/internal/receipt"

	"github.com/spf13/cobra"
)

type ocrOutput struct {
	Text        string                        `json:"text,omitempty"`
	Parsed      *receipt.Result               `json:"parsed"`
	Transaction *dto.CreateTransactionRequest `json:"transaction,omitempty"`
}

func newOCRCmd() *cobra.Command {
	var (
		owner    string
		withText bool
	)

	cmd := &cobra.Command{
		Use:   "ocr <file>",
		Short: "Extract a transaction from a receipt image or PDF without touching the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			if !receipt.IsSupported(args[0]) {
				return fmt.Errorf("unsupported receipt file type: %s", args[0])
			}

			parser, err := receipt.NewDefaultParser()
			if err != nil {
				return err
			}

			text, err := receipt.NewExtractor(cfg.Receipt, logger).Extract(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to extract text: %w", err)
			}

			out := ocrOutput{Parsed: parser.Parse(text)}
			if withText {
				out.Text = text
			}
			if out.Parsed.Found() {
				out.Transaction = receipt.MapToTransaction(out.Parsed, owner)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "Account holder name, used to decide the transaction direction")
	cmd.Flags().BoolVar(&withText, "text", false, "Include the raw extracted text")
	return cmd
}
