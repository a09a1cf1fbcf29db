package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"medication-cart/internal/domain/dosing"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/drawers", func(dr chi.Router) {
		dr.Get("/", listDrawersHandler(svc))
		dr.Get("/{drawerID}", getDrawerHandler(svc))
		dr.Get("/{drawerID}/contents", drawerContentsHandler(svc))
	})

	r.Route("/api/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/drawer/{drawerID}", listByDrawerHandler(svc))
		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Get("/{medicationID}/preparation", preparationHandler(svc))
	})
}

// drawerResponse representa un cajón del carro.
type drawerResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position int    `json:"position"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

// medicationResponse representa un registro del catálogo con sus capabilities resueltas.
type medicationResponse struct {
	ID       string `json:"id"`
	DrawerID string `json:"drawer_id"`

	Name        string `json:"name"`
	GenericName string `json:"generic_name,omitempty"`
	BrandName   string `json:"brand_name,omitempty"`

	Dosage         string `json:"dosage"`
	Form           string `json:"form"`
	Route          string `json:"route"`
	Frequency      string `json:"frequency,omitempty"`
	Classification string `json:"classification"`

	Indication            string `json:"indication,omitempty"`
	Contraindications     string `json:"contraindications,omitempty"`
	SideEffects           string `json:"side_effects,omitempty"`
	NursingConsiderations string `json:"nursing_considerations,omitempty"`
	Warnings              string `json:"warnings,omitempty"`
	StorageInstructions   string `json:"storage_instructions,omitempty"`
	Manufacturer          string `json:"manufacturer,omitempty"`
	NDCNumber             string `json:"ndc_number,omitempty"`

	ControlledSubstance bool   `json:"controlled_substance"`
	ScheduleClass       string `json:"schedule_class,omitempty"`
	Color               string `json:"color,omitempty"`

	ItemType ItemType `json:"item_type" enums:"medication,tool,supply"`

	PrepMethod       *string `json:"prep_method,omitempty"`
	PrepTargetAmount *string `json:"prep_target_amount,omitempty"`
	PrepTargetUnit   *string `json:"prep_target_unit,omitempty"`
	PrepMaxAmount    *string `json:"prep_max_amount,omitempty"`

	Icon       Icon      `json:"icon"`
	Packaging  Packaging `json:"packaging"`
	Preparable bool      `json:"preparable"`
	PrepIssue  string    `json:"prep_issue,omitempty"`
}

type drawerContentsResponse struct {
	Drawer      drawerResponse       `json:"drawer"`
	Medications []medicationResponse `json:"medications"`
	Tools       []medicationResponse `json:"tools"`
}

// TargetResponse es el Target interpretado; lo reutiliza el módulo practice.
type TargetResponse struct {
	TargetAmount float64        `json:"target_amount"`
	Unit         string         `json:"unit"`
	Method       dosing.Method  `json:"method" enums:"syringe,cup"`
	MaxAmount    float64        `json:"max_amount"`
	StepSize     float64        `json:"step_size"`
	TabletCount  *float64       `json:"tablet_count,omitempty"`
	Ticks        []TickResponse `json:"ticks"`
}

type TickResponse struct {
	Value float64 `json:"value"`
	Major bool    `json:"major"`
}

type preparationResponse struct {
	MedicationID string         `json:"medication_id"`
	Name         string         `json:"name"`
	Dosage       string         `json:"dosage"`
	Route        string         `json:"route"`
	Target       TargetResponse `json:"target"`
}

// listDrawersHandler godoc
// @Summary Listar cajones
// @Description Devuelve los cajones del carro ordenados por posición.
// @Tags catalog
// @Produce json
// @Success 200 {array} drawerResponse
// @Failure 500 {string} string "internal error"
// @Router /api/drawers [get]
func listDrawersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDrawers(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]drawerResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDrawerResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDrawerHandler godoc
// @Summary Obtener cajón
// @Tags catalog
// @Produce json
// @Param drawerID path string true "ID del cajón"
// @Success 200 {object} drawerResponse
// @Failure 404 {string} string "Drawer not found"
// @Router /api/drawers/{drawerID} [get]
func getDrawerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetDrawer(r.Context(), chi.URLParam(r, "drawerID"))
		if err != nil {
			writeLookupError(w, err, "Drawer not found")
			return
		}
		writeJSON(w, http.StatusOK, toDrawerResponse(d))
	}
}

// drawerContentsHandler godoc
// @Summary Contenido del cajón
// @Description Medicaciones y herramientas/insumos del cajón, separadas como en la vista del carro.
// @Tags catalog
// @Produce json
// @Param drawerID path string true "ID del cajón"
// @Success 200 {object} drawerContentsResponse
// @Failure 404 {string} string "Drawer not found"
// @Router /api/drawers/{drawerID}/contents [get]
func drawerContentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.DrawerContents(r.Context(), chi.URLParam(r, "drawerID"))
		if err != nil {
			writeLookupError(w, err, "Drawer not found")
			return
		}

		writeJSON(w, http.StatusOK, drawerContentsResponse{
			Drawer:      toDrawerResponse(c.Drawer),
			Medications: toMedicationResponses(c.Medications),
			Tools:       toMedicationResponses(c.Tools),
		})
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Todos los registros del catálogo (medicaciones, herramientas e insumos).
// @Tags catalog
// @Produce json
// @Success 200 {array} medicationResponse
// @Router /api/medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMedications(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// listByDrawerHandler godoc
// @Summary Medicaciones por cajón
// @Tags catalog
// @Produce json
// @Param drawerID path string true "ID del cajón"
// @Success 200 {array} medicationResponse
// @Router /api/medications/drawer/{drawerID} [get]
func listByDrawerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByDrawer(r.Context(), chi.URLParam(r, "drawerID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicación
// @Tags catalog
// @Produce json
// @Param medicationID path string true "ID del registro"
// @Success 200 {object} medicationResponse
// @Failure 404 {string} string "Medication not found"
// @Router /api/medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetMedication(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeLookupError(w, err, "Medication not found")
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// preparationHandler godoc
// @Summary Objetivo de preparación
// @Description Interpreta los datos de preparación del registro. 422 si el ejercicio no está disponible.
// @Tags catalog
// @Produce json
// @Param medicationID path string true "ID del registro"
// @Success 200 {object} preparationResponse
// @Failure 404 {string} string "Medication not found"
// @Failure 422 {string} string "no preparation data / invalid preparation data"
// @Router /api/medications/{medicationID}/preparation [get]
func preparationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, t, err := svc.PreparationTarget(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			var pe *dosing.ParseError
			switch {
			case errors.Is(err, dosing.ErrNoPreparationData):
				http.Error(w, "no preparation data", http.StatusUnprocessableEntity)
			case errors.As(err, &pe):
				http.Error(w, "invalid preparation data", http.StatusUnprocessableEntity)
			default:
				writeLookupError(w, err, "Medication not found")
			}
			return
		}

		writeJSON(w, http.StatusOK, preparationResponse{
			MedicationID: m.ID,
			Name:         m.Name,
			Dosage:       m.Dosage,
			Route:        m.Route,
			Target:       ToTargetResponse(t),
		})
	}
}

func writeLookupError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, notFound, http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDrawerResponse(d Drawer) drawerResponse {
	return drawerResponse{
		ID:       d.ID,
		Label:    d.Label,
		Position: d.Position,
		Color:    d.Color,
		Size:     d.Size,
	}
}

func toMedicationResponses(items []Medication) []medicationResponse {
	out := make([]medicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicationResponse(m))
	}
	return out
}

func toMedicationResponse(m Medication) medicationResponse {
	c := ResolveCapabilities(m)
	return medicationResponse{
		ID:                    m.ID,
		DrawerID:              m.DrawerID,
		Name:                  m.Name,
		GenericName:           m.GenericName,
		BrandName:             m.BrandName,
		Dosage:                m.Dosage,
		Form:                  m.Form,
		Route:                 m.Route,
		Frequency:             m.Frequency,
		Classification:        m.Classification,
		Indication:            m.Indication,
		Contraindications:     m.Contraindications,
		SideEffects:           m.SideEffects,
		NursingConsiderations: m.NursingConsiderations,
		Warnings:              m.Warnings,
		StorageInstructions:   m.StorageInstructions,
		Manufacturer:          m.Manufacturer,
		NDCNumber:             m.NDCNumber,
		ControlledSubstance:   m.ControlledSubstance,
		ScheduleClass:         m.ScheduleClass,
		Color:                 m.Color,
		ItemType:              m.ItemType,
		PrepMethod:            m.PrepMethod,
		PrepTargetAmount:      m.PrepTargetAmount,
		PrepTargetUnit:        m.PrepTargetUnit,
		PrepMaxAmount:         m.PrepMaxAmount,
		Icon:                  c.Icon,
		Packaging:             c.Packaging,
		Preparable:            c.Preparable,
		PrepIssue:             c.PrepIssue,
	}
}

func ToTargetResponse(t dosing.Target) TargetResponse {
	ticks := dosing.Ticks(t.MaxAmount, t.StepSize)
	out := TargetResponse{
		TargetAmount: t.TargetAmount,
		Unit:         t.Unit,
		Method:       t.Method,
		MaxAmount:    t.MaxAmount,
		StepSize:     t.StepSize,
		TabletCount:  t.TabletCount,
		Ticks:        make([]TickResponse, 0, len(ticks)),
	}
	for _, tk := range ticks {
		out.Ticks = append(out.Ticks, TickResponse{Value: tk.Value, Major: tk.Major})
	}
	return out
}

// writeJSON está duplicado en cada módulo (catalog/practice), igual que en el resto de handlers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
