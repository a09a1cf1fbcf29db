package dosing

// Method es el instrumento con el que se prepara la dosis.
// @Enum syringe, cup
type Method string

const (
	MethodUnset   Method = ""
	MethodSyringe Method = "syringe"
	MethodCup     Method = "cup"
)

func (m Method) Valid() bool {
	return m == MethodSyringe || m == MethodCup
}

// DisplayName es el nombre que ve el estudiante.
func (m Method) DisplayName() string {
	switch m {
	case MethodSyringe:
		return "syringe"
	case MethodCup:
		return "medication cup"
	default:
		return ""
	}
}

const (
	ItemTypeMedication = "medication"

	DefaultSyringeMax = 10.0
	DefaultCupMax     = 6.0

	SyringeStep = 0.5
	CupStep     = 1.0

	// AmountTolerance absorbe el redondeo de la cuantización, no es holgura clínica.
	AmountTolerance = 0.01
)

// Record es la vista de preparación de un registro del catálogo.
// Los campos opcionales van como punteros: nil = ausente.
type Record struct {
	ItemType         string
	PrepMethod       *string
	PrepTargetAmount *string
	PrepTargetUnit   *string
	PrepMaxAmount    *string
}

// Target es la respuesta correcta normalizada para un registro.
type Target struct {
	TargetAmount float64
	Unit         string
	Method       Method
	MaxAmount    float64
	StepSize     float64

	// Solo para cup (cantidad de tabletas).
	TabletCount *float64
}

type Phase string

const (
	PhaseChoosingMethod Phase = "choosing_method"
	PhaseFilling        Phase = "filling"
	PhaseShowingResult  Phase = "showing_result"
)

// DragState reemplaza el flag isDragging: el arrastre siempre termina en Idle.
type DragState string

const (
	DragIdle     DragState = "idle"
	DragDragging DragState = "dragging"
)

// Geometry es la caja vertical del cuerpo de la jeringa (coordenadas de pantalla).
type Geometry struct {
	Top    float64
	Height float64
}

// Verdict es el resultado de evaluar un intento.
type Verdict struct {
	AmountCorrect  bool
	MethodCorrect  bool
	OverallCorrect bool
	Feedback       Feedback
}

// Feedback trae los datos descriptivos para la capa de presentación.
type Feedback struct {
	Title          string
	ChosenMethod   Method
	ExpectedMethod Method

	// Vacíos cuando no aplican.
	WrongMethod string
	WrongAmount string

	Submitted string
	Expected  string
}
