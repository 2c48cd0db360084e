package domain

// SourceType names the backend of a configured package source.
type SourceType string

const (
	// SourceTypeDir is a feed stored in a local directory.
	SourceTypeDir SourceType = "dir"
	// SourceTypeS3 is a feed stored in an S3 bucket.
	SourceTypeS3 SourceType = "s3"
)

// SourceConfig describes one configured package source.
type SourceConfig struct {
	Name string
	Type SourceType

	// Path is the feed directory for dir sources.
	Path string

	// Bucket, Prefix, Region and Endpoint locate the feed for s3 sources.
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// Config is the validated pkgr configuration.
type Config struct {
	// ProjectDir is the directory of the project packages are installed into.
	ProjectDir string

	// Sources are the package sources in priority order.
	Sources []SourceConfig

	// Resolution holds the default resolution settings.
	Resolution ResolutionContext
}
