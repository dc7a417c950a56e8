package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	gestures "github.com/ThatOtherAndrew/strokebench/internal/gesture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded gestures",
	Run:   listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) {
	corpus, err := gestures.Load(corpusPath())
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	if len(corpus.Gestures) == 0 {
		fmt.Println("No gestures registered")
		return
	}

	rows := make([][]string, 0, len(corpus.Gestures))
	for i, g := range corpus.Gestures {
		rows = append(rows, []string{strconv.Itoa(i), g.Name, strconv.Itoa(len(g.Samples))})
	}
	if err := renderTable(os.Stdout, []string{"#", "Gesture", "Samples"}, rows); err != nil {
		log.Fatal(err)
	}
}
