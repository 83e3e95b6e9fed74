package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/crashlens/crashlens/internal/dataset"
	"github.com/crashlens/crashlens/internal/export"
	"github.com/crashlens/crashlens/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cleaned collision records to a sink",
	Long: `export loads the collisions CSV, normalizes each row into a flat record with
a derived severity class, and streams the records to the configured sink:
kafka, parquet (local or S3), postgres, or console.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runExport(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runExport(cfg *models.Config) error {
	ds, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	dest, err := export.NewDestination(context.Background(), cfg)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(dest, cfg.KafkaTopic)
	bar := progressbar.Default(int64(len(ds.Records)), "exporting records")
	for _, rec := range ds.Records {
		if err := exporter.Export(rec); err != nil {
			exporter.Close()
			return err
		}
		bar.Add(1)
	}

	if err := exporter.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	fmt.Printf("Exported %d records (batch %s) via %s.\n", len(ds.Records), exporter.BatchID, cfg.ExportFormat)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("data-file", "Motor_Vehicle_Collisions_-_Crashes_20250127.csv", "Path to the collisions CSV")
	exportCmd.Flags().String("format", "console", "Export sink: kafka, parquet, postgres, console")
	exportCmd.Flags().String("export-path", "export", "Output path for file-based sinks")
	exportCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	exportCmd.Flags().String("kafka-topic", "collisions", "Kafka topic / sink label")

	viper.BindPFlag("data_file", exportCmd.Flags().Lookup("data-file"))
	viper.BindPFlag("export_format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("export_path", exportCmd.Flags().Lookup("export-path"))
	viper.BindPFlag("kafka_broker_list", exportCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("kafka_topic", exportCmd.Flags().Lookup("kafka-topic"))
}
