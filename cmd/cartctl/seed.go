package main

import (
	"errors"
	"fmt"

	pg "medication-cart/internal/adapters/storage/postgres"
	"medication-cart/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crear el schema en Postgres y cargar el catálogo si está vacío",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DBDSN == "" {
			return errors.New("DB_DSN is required")
		}

		cat, err := seed.Load(catalogFile)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.EnsureSchema(ctx, db); err != nil {
			return err
		}
		inserted, err := pg.SeedIfEmpty(ctx, db, cat.Drawers, cat.Medications)
		if err != nil {
			return err
		}

		if inserted {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d drawers, %d records\n", len(cat.Drawers), len(cat.Medications))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "catalog already present, nothing to do")
		}
		return nil
	},
}
