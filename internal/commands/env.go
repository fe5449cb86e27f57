package commands

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/config"
	"github.com/wealth-dev/wealth/internal/importer"
	"github.com/wealth-dev/wealth/internal/ledger"
	"github.com/wealth-dev/wealth/internal/logging"
)

// env is the loaded state a report command runs against.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	csvDir string
}

// load builds the logger, reads the config and resolves the CSV directory.
// A relative csv_dir is taken relative to the config file.
func (o *options) load(cmd *cobra.Command) (*env, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(o.configPath, logger)
	if err != nil {
		return nil, err
	}

	dir := o.csvDir
	if dir == "" {
		dir = cfg.CSVDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(o.configPath), dir)
		}
	}
	logger.Debug("loaded config", "config", o.configPath, "csv_dir", dir)

	return &env{cfg: cfg, logger: logger, csvDir: dir}, nil
}

func (e *env) ledger() (*ledger.Ledger, error) {
	return ledger.NewBuilder(importer.DefaultRegistry(), e.cfg, e.logger).Build(e.csvDir)
}
