package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ThatOtherAndrew/strokebench/internal/bench"
	gestures "github.com/ThatOtherAndrew/strokebench/internal/gesture"
	"github.com/spf13/cobra"
)

var (
	benchOut      string
	benchVariants []string
	benchWorkers  int
	benchConfuse  string
	benchTimings  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Score every recorded sample with each recognizer variant",
	Run:   runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVarP(&benchOut, "out", "o", "", "write per-sample scores and timings to this CSV file")
	benchCmd.Flags().StringSliceVar(&benchVariants, "variant", nil,
		"variants to run (default: dollar-one, dollar-p, protractor, dollar-p-rotated)")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "parallel comparisons (default from settings)")
	benchCmd.Flags().StringVar(&benchConfuse, "confusion", "", "print the actual-vs-predicted matrix for this variant")
	benchCmd.Flags().BoolVar(&benchTimings, "timings", false, "print mean time per gesture for each variant")
}

func selectVariants(names []string) ([]bench.Variant, error) {
	all := bench.DefaultVariants()
	if len(names) == 0 {
		return all, nil
	}
	var selected []bench.Variant
	for _, name := range names {
		found := false
		for _, v := range all {
			if v.Name == name {
				selected = append(selected, v)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown variant: %s", name)
		}
	}
	return selected, nil
}

func runBench(cmd *cobra.Command, args []string) {
	variants, err := selectVariants(benchVariants)
	if err != nil {
		log.Fatal(err)
	}

	settings := loadSettings()
	corpus, err := gestures.Load(corpusPath())
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	if len(corpus.Gestures) == 0 {
		fmt.Println("No gestures registered")
		return
	}
	log.Printf("Loaded %d gesture(s)", len(corpus.Gestures))

	workers := settings.Workers
	if benchWorkers > 0 {
		workers = benchWorkers
	}

	comparisons, err := bench.Run(cmd.Context(), corpus, variants, bench.Options{
		ResampleCount: settings.ResampleCount,
		SquareSize:    settings.SquareSize,
		Workers:       workers,
	})
	if err != nil {
		log.Fatal("Benchmark failed: ", err)
	}

	if benchOut != "" {
		f, err := os.Create(benchOut)
		if err != nil {
			log.Fatal("Failed to create output file: ", err)
		}
		if err := bench.WriteCSV(f, comparisons); err != nil {
			f.Close()
			log.Fatal("Failed to write scores: ", err)
		}
		if err := f.Close(); err != nil {
			log.Fatal("Failed to write scores: ", err)
		}
		log.Printf("Wrote %d row(s) to %s", len(comparisons), benchOut)
	}

	summaries := bench.Summarize(comparisons)
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.Variant,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f%%", 100*s.Accuracy()),
			fmt.Sprintf("%.3f", float64(s.MeanElapsed)/float64(time.Millisecond)),
		}
	}
	if err := renderTable(os.Stdout, []string{"Variant", "Samples", "Accuracy", "Mean ms"}, rows); err != nil {
		log.Fatal(err)
	}

	if benchConfuse != "" {
		_, names := corpus.Templates()
		if err := renderConfusion(os.Stdout, benchConfuse, bench.Confusion(comparisons, benchConfuse), names); err != nil {
			log.Fatal(err)
		}
	}
	if benchTimings {
		if err := renderTimings(os.Stdout, bench.GestureTimings(comparisons)); err != nil {
			log.Fatal(err)
		}
	}
}

// renderConfusion prints actual gestures as rows and predictions as columns,
// numbered by template index.
func renderConfusion(w io.Writer, variant string, matrix [][]int, names []string) error {
	if len(matrix) == 0 {
		fmt.Fprintln(w, "No comparisons for variant", variant)
		return nil
	}
	header := []string{"Actual/Predicted"}
	for i := range matrix {
		header = append(header, strconv.Itoa(i))
	}
	rows := make([][]string, len(matrix))
	for i, counts := range matrix {
		label := strconv.Itoa(i)
		if i < len(names) {
			label += " " + names[i]
		}
		rows[i] = append(rows[i], label)
		for _, n := range counts {
			rows[i] = append(rows[i], strconv.Itoa(n))
		}
	}
	return renderTable(w, header, rows)
}

func renderTimings(w io.Writer, t bench.Timings) error {
	header := append([]string{"Gesture"}, t.Variants...)
	rows := make([][]string, len(t.Gestures))
	for g, name := range t.Gestures {
		rows[g] = append(rows[g], name)
		for _, d := range t.Mean[g] {
			rows[g] = append(rows[g], fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond)))
		}
	}
	return renderTable(w, header, rows)
}
