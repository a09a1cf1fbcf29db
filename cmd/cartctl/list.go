package main

import (
	"context"
	"fmt"
	"io"

	"medication-cart/internal/domain/catalog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [drawer-id]",
	Short: "Listar cajones y su contenido",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := catalogService()
		if err != nil {
			return err
		}
		return listCatalog(commandContext(cmd), svc, cmd.OutOrStdout(), args)
	},
}

func listCatalog(ctx context.Context, svc *catalog.Service, out io.Writer, only []string) error {
	drawers, err := svc.ListDrawers(ctx)
	if err != nil {
		return err
	}

	header := color.New(color.Bold)
	for _, d := range drawers {
		if len(only) == 1 && d.ID != only[0] {
			continue
		}

		c, err := svc.DrawerContents(ctx, d.ID)
		if err != nil {
			return err
		}

		header.Fprintf(out, "%d. %s", d.Position, d.Label)
		fmt.Fprintf(out, " [%s]\n", d.ID)
		for _, m := range c.Medications {
			caps := catalog.ResolveCapabilities(m)
			line := fmt.Sprintf("   %-28s %-14s %-8s %s", m.ID, m.Dosage, m.Route, caps.Packaging)
			if m.ControlledSubstance {
				line += " " + m.ScheduleClass
			}
			if caps.Preparable {
				line += fmt.Sprintf("  (practice: %s)", caps.PrepMethod)
			}
			fmt.Fprintln(out, line)
		}
		for _, m := range c.Tools {
			fmt.Fprintf(out, "   %-28s %s\n", m.ID, m.ItemType)
		}
	}
	return nil
}
