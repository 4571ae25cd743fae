package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"housepriced/internal/features"
	"housepriced/internal/predict"
	"housepriced/pkg/types"
)

// runPredict answers one request offline with the same payloads as POST
// /predict. The model must load.
func runPredict(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg, opts.stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	body, err := readInput(opts)
	if err != nil {
		return err
	}
	svc, err := predict.Open(cfg.ModelPath, true, log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(opts.stdout)
	enc.SetIndent("", "  ")
	resp, err := predictBody(cmd, svc, body)
	if err != nil {
		_ = enc.Encode(types.ErrorResponse{Error: err.Error()})
		return err
	}
	return enc.Encode(resp)
}

func predictBody(cmd *cobra.Command, svc *predict.Service, body []byte) (types.PredictResponse, error) {
	obj, err := features.ParseObject(body)
	if err != nil {
		return types.PredictResponse{}, err
	}
	rec, err := features.Extract(obj)
	if err != nil {
		return types.PredictResponse{}, err
	}
	return svc.Predict(cmd.Context(), rec)
}

func readInput(opts *options) ([]byte, error) {
	if opts.input == "" || opts.input == "-" {
		return io.ReadAll(opts.stdin)
	}
	b, err := os.ReadFile(opts.input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}
