package cmd

import (
	"fmt"
	"os"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/crashlens/crashlens/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "crashlens",
	Short: "Exploratory analysis of NYC motor vehicle collision data",
	Long: `crashlens profiles the NYC Motor Vehicle Collisions dataset, renders summary
charts and a seasonal decomposition of the daily crash series, and produces
interactive heatmap, severity and cluster maps as standalone HTML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := pipeline.Run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("data-file", "Motor_Vehicle_Collisions_-_Crashes_20250127.csv", "Path to the collisions CSV")
	rootCmd.Flags().String("output-dir", "output", "Directory for chart artifacts")
	rootCmd.Flags().Int64("seed", 42, "Random seed for map sampling")
	rootCmd.Flags().Int("top-n", 10, "Number of entries in ranking charts")
	rootCmd.Flags().Int("severity-sample-size", 1000, "Sample size for the severity map")
	rootCmd.Flags().Int("cluster-sample-size", 5000, "Sample size for the cluster map")
	rootCmd.Flags().Int("decomposition-period", 365, "Seasonal decomposition period in days")

	viper.BindPFlag("data_file", rootCmd.Flags().Lookup("data-file"))
	viper.BindPFlag("output_dir", rootCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("top_n", rootCmd.Flags().Lookup("top-n"))
	viper.BindPFlag("severity_sample_size", rootCmd.Flags().Lookup("severity-sample-size"))
	viper.BindPFlag("cluster_sample_size", rootCmd.Flags().Lookup("cluster-sample-size"))
	viper.BindPFlag("decomposition_period", rootCmd.Flags().Lookup("decomposition-period"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
