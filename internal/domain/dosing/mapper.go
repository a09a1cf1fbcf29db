package dosing

import "math"

// roundTenth redondea a un decimal para evitar deriva de punto flotante (0.1+0.2...).
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Quantize lleva un valor crudo al múltiplo de step más cercano dentro de [0, maxAmount].
func Quantize(raw, maxAmount, step float64) float64 {
	if maxAmount <= 0 || math.IsNaN(raw) {
		return 0
	}
	if step <= 0 {
		return clamp(roundTenth(raw), 0, maxAmount)
	}
	snapped := math.Round(raw/step) * step
	return clamp(roundTenth(snapped), 0, maxAmount)
}

// MapPosition convierte la Y absoluta del puntero en una cantidad.
// Cada evento recalcula desde la posición absoluta, así no se acumula error de redondeo.
func MapPosition(pointerY, containerTop, containerHeight, maxAmount, step float64) float64 {
	if containerHeight <= 0 {
		return 0
	}
	fraction := clamp((containerTop+containerHeight-pointerY)/containerHeight, 0, 1)
	return Quantize(fraction*maxAmount, maxAmount, step)
}

// Adjust aplica un incremento/decremento discreto (botones + / -).
func Adjust(current, delta, maxAmount float64) float64 {
	return clamp(roundTenth(current+delta), 0, maxAmount)
}

// Tick es una marca de la escala de la jeringa.
type Tick struct {
	Value float64
	Major bool
}

// Ticks lista las marcas de 0 a maxAmount; las de valor entero son mayores.
func Ticks(maxAmount, step float64) []Tick {
	if maxAmount <= 0 || step <= 0 {
		return nil
	}
	n := int(math.Floor(maxAmount/step + 1e-9))
	out := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := roundTenth(float64(i) * step)
		out = append(out, Tick{Value: v, Major: v == math.Trunc(v)})
	}
	return out
}
