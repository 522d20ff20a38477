package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pillarlog/pillar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit a sample log sequence to both sinks",
	Long: `Emit a short sequence of records at several severities.

INFO and above appear on the console; every record, including DEBUG, is
appended to <log-dir>/log.txt without color. The location column starts at
the same offset on every line regardless of the level name's length.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	color := viper.GetBool("color")
	if !cmd.Flags().Changed("color") && !isatty.IsTerminal(os.Stdout.Fd()) {
		color = false
	}

	logger, err := pillar.New(viper.GetString("log_dir"), pillar.WithColor(color))
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Process started.")
	logger.Debug("Demo sequence selected.")
	logger.Warning("Configuration file not found.")

	if _, err := divide(100, 0); err != nil {
		logger.Errorf("Calculation failed: %v", err)
	}

	logger.Info("Task finished.")
	return nil
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}
