package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/crashlens/crashlens/internal/cloudwriter"
	"github.com/crashlens/crashlens/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetDestination writes export records into a single Parquet file, either
// on local disk or streamed to object storage through the cloudwriter
// abstraction.
type ParquetDestination struct {
	pw   *writer.ParquetWriter
	file source.ParquetFile
}

func NewParquetDestination(cfg *models.Config) (*ParquetDestination, error) {
	fw, err := openParquetFile(cfg)
	if err != nil {
		return nil, err
	}

	pw, err := writer.NewParquetWriter(fw, new(Record), 4)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}

	return &ParquetDestination{pw: pw, file: fw}, nil
}

func openParquetFile(cfg *models.Config) (source.ParquetFile, error) {
	if cfg.CloudStorage.Provider == "s3" {
		factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		if err != nil {
			return nil, fmt.Errorf("create cloud writer factory: %w", err)
		}
		cw, err := factory.NewWriter(cfg.CloudStorage.BucketName, path.Join(cfg.ExportPath, "collisions.parquet"))
		if err != nil {
			return nil, fmt.Errorf("create cloud file writer: %w", err)
		}
		return cloudwriter.NewParquetFile(cw), nil
	}

	if err := os.MkdirAll(cfg.ExportPath, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	fw, err := local.NewLocalFileWriter(filepath.Join(cfg.ExportPath, "collisions.parquet"))
	if err != nil {
		return nil, fmt.Errorf("create local file writer: %w", err)
	}
	return fw, nil
}

func (p *ParquetDestination) WriteMessage(topic string, msg []byte) error {
	var rec Record
	if err := json.Unmarshal(msg, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if err := p.pw.Write(rec); err != nil {
		return fmt.Errorf("write parquet record: %w", err)
	}
	return nil
}

func (p *ParquetDestination) Close() error {
	if err := p.pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet file: %w", err)
	}
	return p.file.Close()
}
