package catalog

import (
	"errors"
	"strings"

	"medication-cart/internal/domain/dosing"
)

type Icon string

const (
	IconPill        Icon = "pill"
	IconSyringe     Icon = "syringe"
	IconDroplets    Icon = "droplets"
	IconStethoscope Icon = "stethoscope"
	IconScissors    Icon = "scissors"
)

type Packaging string

const (
	PackagingVial    Packaging = "vial"
	PackagingBottle  Packaging = "bottle"
	PackagingInhaler Packaging = "inhaler"
	PackagingSyringe Packaging = "syringe"
	PackagingTool    Packaging = "tool"
)

// Capabilities se resuelve una vez por registro; las vistas no vuelven a comparar strings.
type Capabilities struct {
	Icon       Icon
	Packaging  Packaging
	Preparable bool
	PrepMethod dosing.Method

	// PrepIssue explica por qué un registro con datos de preparación no es preparable.
	PrepIssue string
}

func ResolveCapabilities(m Medication) Capabilities {
	c := Capabilities{
		Icon:      iconFor(m.Form, m.ItemType),
		Packaging: packagingFor(m.Form, m.Route),
	}

	t, err := dosing.Interpret(m.PrepRecord())
	switch {
	case err == nil:
		c.Preparable = true
		c.PrepMethod = t.Method
	case errors.Is(err, dosing.ErrAmbiguousMethod):
		c.PrepIssue = "ambiguous prep method"
	case errors.Is(err, dosing.ErrNoPreparationData):
		// sin ejercicio, no es un problema de datos
	default:
		c.PrepIssue = err.Error()
	}
	return c
}

func iconFor(form string, itemType ItemType) Icon {
	switch itemType {
	case ItemTypeTool:
		return IconStethoscope
	case ItemTypeSupply:
		return IconScissors
	}

	f := strings.ToLower(form)
	switch {
	case containsAny(f, "tablet", "pill", "capsule"):
		return IconPill
	case containsAny(f, "injection", "syringe", "vial"):
		return IconSyringe
	case containsAny(f, "liquid", "solution", "iv"):
		return IconDroplets
	default:
		return IconPill
	}
}

func packagingFor(form, route string) Packaging {
	f := strings.ToLower(form)
	r := strings.ToLower(strings.TrimSpace(route))

	switch {
	case containsAny(f, "tool", "supply") || r == "n/a":
		return PackagingTool
	case containsAny(f, "inhaler", "mdi", "nebulizer"):
		return PackagingInhaler
	case containsAny(f, "injection", "vial", "infusion", "powder for"):
		return PackagingVial
	case strings.Contains(f, "syringe"):
		return PackagingSyringe
	default:
		return PackagingBottle
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
