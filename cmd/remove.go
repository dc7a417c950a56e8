package cmd

import (
	"fmt"
	"log"

	gestures "github.com/ThatOtherAndrew/strokebench/internal/gesture"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [gesture]",
	Short: "Remove a gesture and all of its samples",
	Args:  cobra.ExactArgs(1),
	Run:   removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) {
	if err := gestures.Remove(corpusPath(), args[0]); err != nil {
		log.Fatal("Failed to remove gesture: ", err)
	}
	fmt.Println("Removed gesture:", args[0])
}
