package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DatabaseConfig holds Postgres connection settings for the export sink.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// CloudStorageConfig holds the destination for Parquet artifacts uploaded to
// object storage.
type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	DataFile  string `mapstructure:"data_file"`
	OutputDir string `mapstructure:"output_dir"`
	Seed      int64  `mapstructure:"seed"`
	TopN      int    `mapstructure:"top_n"`

	// Map rendering
	MapCenterLat       float64 `mapstructure:"map_center_lat"`
	MapCenterLon       float64 `mapstructure:"map_center_lon"`
	MapZoom            int     `mapstructure:"map_zoom"`
	HeatRadius         int     `mapstructure:"heat_radius"`
	HeatMaxZoom        int     `mapstructure:"heat_max_zoom"`
	SeveritySampleSize int     `mapstructure:"severity_sample_size"`
	ClusterSampleSize  int     `mapstructure:"cluster_sample_size"`

	// Time series
	DecompositionPeriod int `mapstructure:"decomposition_period"`

	// Export
	ExportFormat    string             `mapstructure:"export_format"`
	ExportPath      string             `mapstructure:"export_path"`
	KafkaBrokerList string             `mapstructure:"kafka_broker_list"`
	KafkaTopic      string             `mapstructure:"kafka_topic"`
	Database        DatabaseConfig     `mapstructure:"database"`
	CloudStorage    CloudStorageConfig `mapstructure:"cloud_storage"`
}

func setDefaults() {
	viper.SetDefault("data_file", "Motor_Vehicle_Collisions_-_Crashes_20250127.csv")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("seed", 42)
	viper.SetDefault("top_n", 10)
	viper.SetDefault("map_center_lat", 40.730610)
	viper.SetDefault("map_center_lon", -73.935242)
	viper.SetDefault("map_zoom", 10)
	viper.SetDefault("heat_radius", 8)
	viper.SetDefault("heat_max_zoom", 13)
	viper.SetDefault("severity_sample_size", 1000)
	viper.SetDefault("cluster_sample_size", 5000)
	viper.SetDefault("decomposition_period", 365)
	viper.SetDefault("export_format", "console")
	viper.SetDefault("export_path", "export")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("kafka_topic", "collisions")
	viper.SetDefault("database.sslmode", "disable")
}

// LoadConfig initializes and reads the configuration using Viper. A missing
// config file is only an error when one was named explicitly; defaults cover
// every setting otherwise.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.TextUnmarshallerHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
