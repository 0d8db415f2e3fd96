package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./rentals.db"

	// DefaultImportBatchSize is how many accepted CSV rows are staged
	// before the importer forces a commit
	DefaultImportBatchSize = 20
)
