package cmd

import (
	"fmt"
	"log"
	"strconv"

	gestures "github.com/ThatOtherAndrew/strokebench/internal/gesture"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [gesture] [sample] [stroke.json]",
	Short: "Record a raw stroke as a sample of a gesture (sample 0 is the template)",
	Args:  cobra.ExactArgs(3),
	Run:   addSample,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func addSample(cmd *cobra.Command, args []string) {
	name := args[0]
	index, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("Invalid sample index %q", args[1])
	}

	s, err := gestures.ReadStroke(args[2])
	if err != nil {
		log.Fatal("Failed to read stroke: ", err)
	}

	settings := loadSettings()
	if _, err := settings.Preprocessing(true).Preprocess(s); err != nil {
		log.Fatal("Stroke is unusable: ", err)
	}

	if err := gestures.PutSample(corpusPath(), name, index, s); err != nil {
		log.Fatal("Failed to save gesture: ", err)
	}
	fmt.Printf("Saved %s sample %d (%d points)\n", name, index, len(s))
}
