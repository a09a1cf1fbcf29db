package main

import (
	"errors"
	"fmt"

	"medication-cart/internal/domain/dosing"
	"medication-cart/internal/terminal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <medication-id>",
	Short: "Preparar una dosis en la terminal",
	Long: `Abre el ejercicio de preparación para un registro del catálogo.

Comandos dentro del ejercicio:
  syringe | cup    elegir el método
  + | -            ajustar la cantidad un paso
  set N            fijar la cantidad (se ajusta al paso más cercano)
  drag Y           arrastrar el émbolo a Y (0 = lleno, 100 = vacío)
  back             volver a elegir método
  submit           entregar la dosis
  again            otro intento tras el resultado
  done             terminar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := catalogService()
		if err != nil {
			return err
		}

		// la lectura del catálogo termina (o falla) antes de empezar el ejercicio
		m, target, err := svc.PreparationTarget(commandContext(cmd), args[0])
		if err != nil {
			if errors.Is(err, dosing.ErrNoPreparationData) {
				return fmt.Errorf("no exercise for %s: %w", args[0], err)
			}
			return err
		}

		runner := terminal.NewRunner(terminal.Exercise{
			Name:   m.Name,
			Dosage: m.Dosage,
			Route:  m.Route,
			Target: target,
		}, cmd.OutOrStdout(), terminal.Options{Color: !color.NoColor})

		res, err := runner.Run(cmd.InOrStdin())
		if err != nil {
			return err
		}

		fields := map[string]any{
			"student_id":    studentID,
			"medication_id": m.ID,
			"attempts":      res.Attempts,
		}
		if res.LastVerdict != nil {
			fields["last_correct"] = res.LastVerdict.OverallCorrect
		}
		log.Info("practice finished", fields)
		return nil
	},
}
