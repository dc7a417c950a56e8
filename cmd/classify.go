package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	gestures "github.com/ThatOtherAndrew/strokebench/internal/gesture"
	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/recognizer"
	"github.com/spf13/cobra"
)

var algorithmFlag string

var classifyCmd = &cobra.Command{
	Use:   "classify [stroke.json]",
	Short: "Score a raw stroke against every gesture template",
	Args:  cobra.ExactArgs(1),
	Run:   classifyStroke,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", string(recognizer.DollarOne),
		"recognizer to use: dollar-one, dollar-p or protractor")
}

func classifyStroke(cmd *cobra.Command, args []string) {
	algorithm := recognizer.Algorithm(algorithmFlag)
	r, err := recognizer.New(algorithm)
	if err != nil {
		log.Fatal(err)
	}

	settings := loadSettings()
	corpus, err := gestures.Load(corpusPath())
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	raw, names := corpus.Templates()
	if len(raw) == 0 {
		fmt.Println("No gestures registered")
		return
	}

	opts := settings.Preprocessing(algorithm.RotateToZero())
	templates := make([]models.Stroke, len(raw))
	for i, t := range raw {
		if templates[i], err = opts.Preprocess(t); err != nil {
			log.Fatalf("Template for %s is unusable: %v", names[i], err)
		}
	}

	s, err := gestures.ReadStroke(args[0])
	if err != nil {
		log.Fatal("Failed to read stroke: ", err)
	}
	candidate, err := opts.Preprocess(s)
	if err != nil {
		log.Fatal("Stroke is unusable: ", err)
	}

	scores, err := r.Recognize(templates, candidate)
	if err != nil {
		log.Fatal("Recognition failed: ", err)
	}

	rows := make([][]string, len(scores))
	for i, score := range scores {
		rows[i] = []string{strconv.Itoa(i), names[i], fmt.Sprintf("%.3f", score)}
	}
	if err := renderTable(os.Stdout, []string{"#", "Gesture", "Score"}, rows); err != nil {
		log.Fatal(err)
	}

	// Normalised scores are relative to the other templates, so the
	// threshold is checked against the best template's absolute confidence.
	best, _ := recognizer.Best(scores)
	confidence, err := recognizer.Confidence(algorithm, templates[best], candidate, opts.SquareSize)
	if err != nil {
		log.Fatal("Recognition failed: ", err)
	}
	if confidence > settings.MatchThreshold {
		log.Printf("Matched gesture: %s (confidence: %.3f)", names[best], confidence)
	} else {
		log.Printf("No confident match (best: %s, confidence: %.3f)", names[best], confidence)
	}
}
