package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/domain/dosing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errInvalidRecords = errors.New("catalog has records with invalid preparation data")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Interpretar los datos de preparación de todo el catálogo",
	Long: `Interpreta cada registro del catálogo y reporta:
  ok        el ejercicio está disponible (método, objetivo y máximo)
  no data   el registro no ofrece ejercicio
  ambiguous prep_method desconocido
  invalid   cantidad mal formada, negativa o por encima del máximo

Sale con error si hay registros ambiguous o invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := catalogService()
		if err != nil {
			return err
		}
		report, err := validateCatalog(commandContext(cmd), svc, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		log.Info("catalog validated", map[string]any{
			"ok":        report.OK,
			"no_data":   report.NoData,
			"ambiguous": report.Ambiguous,
			"invalid":   report.Invalid,
		})
		if report.Ambiguous+report.Invalid > 0 {
			return errInvalidRecords
		}
		return nil
	},
}

type validationReport struct {
	OK, NoData, Ambiguous, Invalid int
}

func validateCatalog(ctx context.Context, svc *catalog.Service, out io.Writer) (validationReport, error) {
	var rep validationReport

	items, err := svc.ListMedications(ctx)
	if err != nil {
		return rep, err
	}

	okC := color.New(color.FgGreen)
	warnC := color.New(color.FgYellow)
	badC := color.New(color.FgRed)

	for _, m := range items {
		t, err := dosing.Interpret(m.PrepRecord())

		var pe *dosing.ParseError
		switch {
		case err == nil:
			rep.OK++
			okC.Fprintf(out, "%-10s", "ok")
			fmt.Fprintf(out, " %s: %s %g %s (max %g)\n", m.ID, t.Method, t.TargetAmount, t.Unit, t.MaxAmount)
		case errors.Is(err, dosing.ErrAmbiguousMethod):
			rep.Ambiguous++
			warnC.Fprintf(out, "%-10s", "ambiguous")
			fmt.Fprintf(out, " %s: prep_method %q\n", m.ID, deref(m.PrepMethod))
		case errors.Is(err, dosing.ErrNoPreparationData):
			rep.NoData++
			fmt.Fprintf(out, "%-10s %s\n", "no data", m.ID)
		case errors.As(err, &pe):
			rep.Invalid++
			badC.Fprintf(out, "%-10s", "invalid")
			fmt.Fprintf(out, " %s: %v\n", m.ID, pe)
		default:
			return rep, err
		}
	}

	fmt.Fprintf(out, "\n%d ok, %d no data, %d ambiguous, %d invalid\n", rep.OK, rep.NoData, rep.Ambiguous, rep.Invalid)
	return rep, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
