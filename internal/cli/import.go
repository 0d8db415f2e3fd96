package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/avolkov/rentals/internal/config"
	"github.com/avolkov/rentals/internal/database"
	"github.com/avolkov/rentals/internal/database/listings"
	"github.com/avolkov/rentals/internal/importers"
	"github.com/avolkov/rentals/internal/validation"
)

// ImportCommand handles bulk-importing listings from a CSV file.
type ImportCommand struct {
	FilePath     string
	DatabasePath string
	BatchSize    int
	Verbose      bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.IntVar(&cmd.BatchSize, "batch-size", config.DefaultImportBatchSize, "Number of accepted rows per commit")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print progress while importing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options] <filePath>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import vacation-rental listings from a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "The first line of the file must be a header naming the fields.\n")
		fmt.Fprintf(os.Stderr, "Consumed columns (matched by name, order irrelevant):\n")
		fmt.Fprintf(os.Stderr, "  name, description, price, location\n\n")
		fmt.Fprintf(os.Stderr, "Rows that are malformed or fail validation are skipped with a\n")
		fmt.Fprintf(os.Stderr, "warning; the rest of the file is still imported.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import rentals.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -db ./catalog.db -verbose rentals.csv\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("required argument <filePath> not provided")
	}
	cmd.FilePath = fs.Arg(0)

	return nil
}

func (cmd *ImportCommand) Run() error {
	// Verify the CSV file exists before touching the database
	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("CSV file not found: %s", cmd.FilePath)
	}

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := listings.NewRepository(db.DB)
	pipeline := importers.NewPipeline(repo, validation.New(), cmd.BatchSize)

	if cmd.Verbose {
		fmt.Printf("Importing from %s (batch size %d)\n", cmd.FilePath, cmd.BatchSize)
		pipeline.OnProgress = func(accepted int) {
			if accepted%cmd.BatchSize == 0 {
				fmt.Printf("  %d rows accepted...\n", accepted)
			}
		}
	}

	result, runErr := pipeline.Run(file)

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Run:      %s\n", result.RunID)
	fmt.Printf("Imported: %d\n", result.Imported)
	fmt.Printf("Skipped:  %d\n", result.Skipped)

	if len(result.Warnings) > 0 {
		fmt.Printf("\n%d rows skipped:\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  [WARN] %s\n", warning)
		}
	}

	if runErr != nil {
		// Batches committed before the failure stay persisted
		return fmt.Errorf("import aborted after %d committed rows: %w", result.Imported, runErr)
	}

	fmt.Println("\nImport complete!")
	return nil
}
