// Package cli implements the kosa CLI commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kosa/internal/config"
	"kosa/pkg/kosa"
)

var (
	particlesPath string
	verbose       bool
	logger        = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "kosa",
	Short: "Korean particle resolution",
	Long: "Chooses the phonologically correct allomorph of a Korean particle " +
		"for a word, and inspects Hangul syllables phoneme by phoneme.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := cfg.Build()
		if err != nil {
			return err
		}
		logger = built
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&particlesPath, "particles", "p", "", "INI file with extra particle definitions")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newResolver() (*kosa.Resolver, error) {
	extra, err := config.LoadParticles(particlesPath)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		logger.Debug("loaded custom particle table",
			zap.String("path", particlesPath),
			zap.Int("particles", len(extra)))
	}
	return kosa.NewResolver(extra...)
}
