package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medication-cart/internal/router"
)

type sessionBody struct {
	ID             string  `json:"id"`
	Phase          string  `json:"phase"`
	Method         string  `json:"method"`
	Amount         float64 `json:"amount"`
	AmountLabel    string  `json:"amount_label"`
	Drag           string  `json:"drag"`
	Attempts       int     `json:"attempts"`
	CanSubmit      bool    `json:"can_submit"`
	SuccessMessage string  `json:"success_message"`
	Target         struct {
		TargetAmount float64 `json:"target_amount"`
		Method       string  `json:"method"`
		MaxAmount    float64 `json:"max_amount"`
		Ticks        []struct {
			Value float64 `json:"value"`
			Major bool    `json:"major"`
		} `json:"ticks"`
	} `json:"target"`
	Verdict *struct {
		AmountCorrect  bool   `json:"amount_correct"`
		MethodCorrect  bool   `json:"method_correct"`
		OverallCorrect bool   `json:"overall_correct"`
		Title          string `json:"title"`
		WrongMethod    string `json:"wrong_method"`
		WrongAmount    string `json:"wrong_amount"`
		Submitted      string `json:"submitted"`
		Expected       string `json:"expected"`
	} `json:"verdict"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{DefaultStudent: "station-1"})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Catalog(t *testing.T) {
	ts := newServer(t)

	// 1) Cajones ordenados por posición
	{
		st, body := doReq(t, ts.URL, "GET", "/api/drawers", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing drawers, got %d body=%s", st, string(body))
		}
		var drawers []struct {
			ID       string `json:"id"`
			Position int    `json:"position"`
		}
		_ = json.Unmarshal(body, &drawers)
		if len(drawers) != 5 || drawers[0].ID != "drawer-oral" {
			t.Fatalf("unexpected drawers: %s", string(body))
		}
	}

	// 2) Cajón inexistente
	{
		st, body := doReq(t, ts.URL, "GET", "/api/drawers/nope", "", nil)
		if st != http.StatusNotFound || !strings.Contains(string(body), "Drawer not found") {
			t.Fatalf("expected 404 Drawer not found, got %d body=%s", st, string(body))
		}
	}

	// 3) Contenido del cajón de insumos: solo herramientas/insumos
	{
		st, body := doReq(t, ts.URL, "GET", "/api/drawers/drawer-supplies/contents", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 drawer contents, got %d body=%s", st, string(body))
		}
		var c struct {
			Medications []json.RawMessage `json:"medications"`
			Tools       []struct {
				Icon string `json:"icon"`
			} `json:"tools"`
		}
		_ = json.Unmarshal(body, &c)
		if len(c.Medications) != 0 || len(c.Tools) != 4 {
			t.Fatalf("unexpected contents: %s", string(body))
		}
	}

	// 4) Medicaciones por cajón (ruta original)
	{
		st, body := doReq(t, ts.URL, "GET", "/api/medications/drawer/drawer-liquid", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 medications by drawer, got %d body=%s", st, string(body))
		}
		var meds []struct {
			DrawerID string `json:"drawer_id"`
		}
		_ = json.Unmarshal(body, &meds)
		if len(meds) == 0 {
			t.Fatalf("expected liquid medications")
		}
		for _, m := range meds {
			if m.DrawerID != "drawer-liquid" {
				t.Fatalf("medication from another drawer: %s", string(body))
			}
		}
	}

	// 5) Medicación: capabilities resueltas
	{
		st, body := doReq(t, ts.URL, "GET", "/api/medications/med-amoxicillin", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get medication, got %d body=%s", st, string(body))
		}
		var m struct {
			Preparable bool   `json:"preparable"`
			Packaging  string `json:"packaging"`
		}
		_ = json.Unmarshal(body, &m)
		if !m.Preparable || m.Packaging != "bottle" {
			t.Fatalf("unexpected capabilities: %s", string(body))
		}
	}

	// 6) Objetivo de preparación: 422 sin datos, 404 inexistente
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/medications/med-albuterol/preparation", "", nil)
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 without prep data, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/medications/nope/preparation", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown medication, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/api/medications/med-lactulose/preparation", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 preparation, got %d body=%s", st, string(body))
		}
		var p struct {
			Target struct {
				TargetAmount float64 `json:"target_amount"`
				MaxAmount    float64 `json:"max_amount"`
				StepSize     float64 `json:"step_size"`
			} `json:"target"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Target.TargetAmount != 15 || p.Target.MaxAmount != 20 || p.Target.StepSize != 0.5 {
			t.Fatalf("unexpected target: %s", string(body))
		}
	}
}

func TestHTTP_EndToEnd_PracticeSession(t *testing.T) {
	ts := newServer(t)
	student := "student-1"

	// 1) Abrir ejercicio de jeringa (amoxicilina, 5 mL)
	s := openSession(t, ts.URL, student, "med-amoxicillin")
	if s.Phase != "choosing_method" || s.Amount != 0 {
		t.Fatalf("unexpected fresh session: %+v", s)
	}
	if s.Target.Method != "syringe" || s.Target.MaxAmount != 10 || len(s.Target.Ticks) != 21 {
		t.Fatalf("unexpected target: %+v", s.Target)
	}

	// 2) Submit antes de elegir método => 409, estado intacto
	{
		st, body := doReq(t, ts.URL, "POST", "/api/practice/sessions/"+s.ID+"/events", student, map[string]any{"type": "submit"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 submit while choosing, got %d body=%s", st, string(body))
		}
	}

	// 3) Elegir jeringa y arrastrar hasta la mitad del cuerpo
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "select_method", "method": "syringe"})
	if s.Phase != "filling" || s.Method != "syringe" {
		t.Fatalf("expected filling with syringe, got %+v", s)
	}

	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{
		"type":             "pointer_down",
		"pointer_y":        250,
		"container_top":    100,
		"container_height": 200,
	})
	if s.Drag != "dragging" || s.Amount != 2.5 {
		t.Fatalf("expected dragging at 2.5, got %+v", s)
	}

	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{
		"type":             "pointer_move",
		"pointer_y":        200,
		"container_top":    100,
		"container_height": 200,
	})
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "pointer_leave"})
	if s.Drag != "idle" || s.Amount != 5 || s.AmountLabel != "5.0 mL" {
		t.Fatalf("expected idle at 5.0 mL, got %+v", s)
	}

	// 4) Submit correcto
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "submit"})
	if s.Phase != "showing_result" || s.Verdict == nil || !s.Verdict.OverallCorrect {
		t.Fatalf("expected correct verdict, got %+v", s)
	}
	if s.Verdict.Title != "Correct!" || s.SuccessMessage != "You correctly prepared 250 mg using a syringe." {
		t.Fatalf("unexpected feedback: %+v", s)
	}

	// 5) Try again: vuelve a elegir método, conserva intentos
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "reset"})
	if s.Phase != "choosing_method" || s.Verdict != nil || s.Attempts != 1 {
		t.Fatalf("expected fresh phase after reset, got %+v", s)
	}

	// 6) Método incorrecto: vaso con 2 tabletas
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "select_method", "method": "cup"})
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "increment"})
	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "increment"})

	// arrastre con vaso => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/practice/sessions/"+s.ID+"/events", student, map[string]any{
			"type": "pointer_down", "pointer_y": 100, "container_top": 100, "container_height": 200,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 drag with cup, got %d", st)
		}
	}

	s = sendEvent(t, ts.URL, student, s.ID, map[string]any{"type": "submit"})
	if s.Verdict == nil || s.Verdict.OverallCorrect || s.Verdict.MethodCorrect || s.Verdict.AmountCorrect {
		t.Fatalf("expected wrong method and amount, got %+v", s.Verdict)
	}
	if s.Verdict.Title != "Not Quite Right" ||
		s.Verdict.WrongMethod != "A syringe would be the correct delivery method for this medication." ||
		s.Verdict.WrongAmount != "You prepared 2 tablets. The correct dose is 5.0 mL." {
		t.Fatalf("unexpected feedback: %+v", s.Verdict)
	}
	if s.SuccessMessage != "" || s.Attempts != 2 {
		t.Fatalf("unexpected session after wrong submit: %+v", s)
	}

	// 7) Otro estudiante no puede ver la sesión
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/practice/sessions/"+s.ID, "student-2", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for another student, got %d", st)
		}
	}

	// 8) Done: cierra y borra
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/practice/sessions/"+s.ID, student, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 close, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/practice/sessions/"+s.ID, student, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after close, got %d", st)
		}
	}
}

func TestHTTP_PracticeOpen(t *testing.T) {
	ts := newServer(t)

	// sin datos de preparación => 422 (fail closed)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/practice/sessions", "", map[string]any{"medication_id": "med-albuterol"})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for albuterol, got %d body=%s", st, string(body))
		}
	}

	// herramienta => 422
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/practice/sessions", "", map[string]any{"medication_id": "tool-stethoscope"})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for a tool, got %d", st)
		}
	}

	// inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/practice/sessions", "", map[string]any{"medication_id": "nope"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}

	// abrir otra medicación reemplaza la sesión del estudiante (estudiante por defecto)
	first := openSession(t, ts.URL, "", "med-acetaminophen")
	second := openSession(t, ts.URL, "", "med-heparin")
	if first.ID == second.ID {
		t.Fatalf("expected a new session id")
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/practice/sessions/"+first.ID, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected replaced session to be gone, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/practice/sessions/"+second.ID, "station-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected default student to own the session, got %d", st)
		}
	}

	// evento desconocido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/practice/sessions/"+second.ID+"/events", "", map[string]any{"type": "shake"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown event, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func openSession(t *testing.T, baseURL, studentID, medicationID string) sessionBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/practice/sessions", studentID, map[string]any{
		"medication_id": medicationID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 open session, got %d body=%s", st, string(body))
	}

	var s sessionBody
	_ = json.Unmarshal(body, &s)
	if s.ID == "" {
		t.Fatalf("open session: missing id body=%s", string(body))
	}
	return s
}

func sendEvent(t *testing.T, baseURL, studentID, sessionID string, ev map[string]any) sessionBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/practice/sessions/"+sessionID+"/events", studentID, ev)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for event %v, got %d body=%s", ev["type"], st, string(body))
	}

	var s sessionBody
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatalf("decode session: %v body=%s", err, string(body))
	}
	return s
}

func doReq(t *testing.T, baseURL, method, path, studentID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if studentID != "" {
		req.Header.Set("X-Student-ID", studentID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
