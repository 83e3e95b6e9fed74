// Package cloudwriter abstracts object-storage uploads so the Parquet export
// can target a bucket instead of local disk.
package cloudwriter

// CloudWriter accumulates one object's bytes and uploads them on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object path.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
