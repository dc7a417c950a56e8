package cmd

import (
	"context"
	"log"

	"github.com/ThatOtherAndrew/strokebench/internal/config"
	"github.com/spf13/cobra"
)

var corpusFlag string

var rootCmd = &cobra.Command{
	Use:   "strokebench",
	Short: "Compare $1, $P and Protractor stroke recognizers on a gesture corpus",
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "",
		"corpus file, .json or .yaml (default ~/.config/strokebench/corpus.json)")
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func corpusPath() string {
	if corpusFlag != "" {
		return corpusFlag
	}
	path, err := config.GetPath()
	if err != nil {
		log.Fatal("Failed to get corpus path:", err)
	}
	return path
}

func loadSettings() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	return settings
}
