package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundvault/soundvault-backend/bootstrap"
	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/logger"
	"github.com/soundvault/soundvault-backend/repository"
	"github.com/soundvault/soundvault-backend/storage"
)

var fixPathsCmd = &cobra.Command{
	Use:   "fixpaths",
	Short: "Rewrite legacy asset paths to the canonical uploads/ form",
	Long: `Scans every category, subcategory and audio record and rewrites asset
paths that do not start with the canonical uploads/ prefix. A path is only
rewritten when the file already exists at the canonical location on disk;
files are never moved or deleted. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFixPaths()
	},
}

func init() {
	rootCmd.AddCommand(fixPathsCmd)
}

func runFixPaths() {
	app := bootstrap.App()
	defer app.CloseDBConnection()
	defer logger.Sync()

	env := app.Env
	db := app.Mongo.Database(env.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	migrator := storage.NewMigrator(
		repository.NewCategoryRepository(db, domain.CollectionCategory),
		repository.NewSubCategoryRepository(db, domain.CollectionSubCategory),
		repository.NewAudioRepository(db, domain.CollectionAudio),
		env.UploadRoot,
		os.Stdout,
	)

	summary, err := migrator.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "migration aborted:", err)
		os.Exit(1)
	}
	fmt.Printf("done: %d fixed, %d not found, %d skipped\n",
		summary.Fixed, summary.NotFound, summary.Skipped)
}
