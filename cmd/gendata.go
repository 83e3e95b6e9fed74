package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/crashlens/crashlens/internal/dataset"
	"github.com/crashlens/crashlens/internal/factories"
	"github.com/crashlens/crashlens/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var gendataCmd = &cobra.Command{
	Use:   "gendata",
	Short: "Generate a synthetic collisions CSV",
	Long: `gendata writes a synthetic dataset with the real CSV's column layout, so the
analysis pipeline runs on it unchanged. Output is deterministic for a given
seed and date range.`,
	Run: func(cmd *cobra.Command, args []string) {
		rows, _ := cmd.Flags().GetInt("rows")
		out, _ := cmd.Flags().GetString("out")
		seed, _ := cmd.Flags().GetInt64("seed")
		startStr, _ := cmd.Flags().GetString("start-date")
		endStr, _ := cmd.Flags().GetString("end-date")

		if err := generateData(rows, out, seed, startStr, endStr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func generateData(rows int, out string, seed int64, startStr, endStr string) error {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return fmt.Errorf("parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return fmt.Errorf("parse end date: %w", err)
	}

	factory := factories.NewCollisionFactory(seed, start, end)

	bar := progressbar.Default(int64(rows), "generating records")
	records := make([]models.Collision, 0, rows)
	for i := 0; i < rows; i++ {
		records = append(records, factory.Generate())
		bar.Add(1)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := dataset.WriteCSV(f, records); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("Wrote %d synthetic records to %s.\n", rows, out)
	return nil
}

func init() {
	rootCmd.AddCommand(gendataCmd)

	gendataCmd.Flags().Int("rows", 10000, "Number of records to generate")
	gendataCmd.Flags().String("out", "synthetic_collisions.csv", "Output CSV path")
	gendataCmd.Flags().Int64("seed", 42, "Random seed")
	gendataCmd.Flags().String("start-date", "2022-01-01", "First crash date (YYYY-MM-DD)")
	gendataCmd.Flags().String("end-date", "2024-12-31", "Last crash date (YYYY-MM-DD)")
}
