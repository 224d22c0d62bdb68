package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/books"
	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/consensus"
	"github.com/chaekmaru/chaekmaru/internal/enrich"
)

func newEnrichCommand() *cobra.Command {
	var (
		isbn        string
		bestsellers int
		maxResults  int
	)

	command := &cobra.Command{
		Use:   "enrich [query]",
		Short: "Fetch, classify and persist books from the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && isbn == "" && bestsellers == 0 {
				return fmt.Errorf("provide a search query, --isbn or --bestsellers")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalogClient, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			options := []enrich.Option{}
			var validator *consensus.Validator
			if cfg.Curation.TargetAgeYears > 0 {
				socialClient, err := newSocialClient(cfg)
				if err != nil {
					return err
				}
				validator = consensus.NewValidator(socialClient)
				options = append(options, enrich.WithTargetAge(cfg.Curation.TargetAgeYears))
			}

			pipeline := enrich.NewPipeline(catalogClient, classify.NewClassifier(), validator,
				books.NewDBRepository(db), options...)

			switch {
			case isbn != "":
				if err := pipeline.EnrichByISBN(cmd.Context(), isbn); err != nil {
					return fmt.Errorf("pipeline.EnrichByISBN > %w", err)
				}
				fmt.Println("Done.")
			case bestsellers > 0:
				count, err := pipeline.EnrichBestsellers(cmd.Context(), bestsellers, maxResults)
				if err != nil {
					return fmt.Errorf("pipeline.EnrichBestsellers > %w", err)
				}
				fmt.Printf("Enriched %d book(s).\n", count)
			default:
				count, err := pipeline.EnrichByQuery(cmd.Context(), args[0], maxResults)
				if err != nil {
					return fmt.Errorf("pipeline.EnrichByQuery > %w", err)
				}
				fmt.Printf("Enriched %d book(s).\n", count)
			}
			return nil
		},
	}

	command.Flags().StringVar(&isbn, "isbn", "", "enrich a single book by ISBN-13")
	command.Flags().IntVar(&bestsellers, "bestsellers", 0, "enrich the bestseller list of a catalog category ID")
	command.Flags().IntVar(&maxResults, "max", 20, "maximum number of books to fetch")

	return command
}
