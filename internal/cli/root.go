package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
	"github.com/admin/astro-services/jyotish/internal/services/engine"
)

// options общие флаги и движок, создаваемый перед запуском подкоманды
type options struct {
	pretty     bool
	logLevel   string
	dashaYears int

	log    *slog.Logger
	engine *engine.Service
}

// NewRootCmd дерево команд расчётов без сервисной инфраструктуры
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "jyotish",
		Short:         "Vedic astrology calculations: charts, matching, panchang and horoscopes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New("jyotish-cli", &logger.Config{Encoding: "console", Level: opts.logLevel})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			opts.log = log
			opts.engine = engine.New(engine.Config{DashaHorizonYears: opts.dashaYears}, log)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", true, "Indent JSON output")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&opts.dashaYears, "dasha-years", 120, "Vimshottari timeline horizon in years")

	rootCmd.AddCommand(
		newChartCmd(opts),
		newMatchCmd(opts),
		newPanchangCmd(opts),
		newHoroscopeCmd(opts),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
