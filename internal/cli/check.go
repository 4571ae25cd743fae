package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"housepriced/internal/model"
)

func runCheckModel(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	path := cfg.ModelPath
	if len(args) == 1 {
		path = args[0]
	}
	m, err := model.Load(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(opts.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Info())
}
