package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"medication-cart/internal/domain/dosing"

	"github.com/fatih/color"
)

// barrel es la jeringa virtual de la terminal: "drag Y" usa Y en [0,100], 0 = arriba (lleno).
var barrel = dosing.Geometry{Top: 0, Height: 100}

var errUsage = errors.New("unknown command (type 'help')")

// Exercise describe el registro que se va a preparar.
type Exercise struct {
	Name   string
	Dosage string
	Route  string
	Target dosing.Target
}

type Options struct {
	// Color activa ANSI; en tests y pipes va apagado.
	Color bool
}

// Result resume la práctica al terminar ("done" o fin de entrada).
type Result struct {
	Attempts    int
	LastVerdict *dosing.Verdict
}

type Runner struct {
	ex      Exercise
	session *dosing.Session
	out     io.Writer

	good, bad, warn, dim *color.Color
}

func NewRunner(ex Exercise, out io.Writer, opts Options) *Runner {
	r := &Runner{
		ex:      ex,
		session: dosing.NewSession(ex.Target),
		out:     out,
		good:    color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow),
		dim:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.good, r.bad, r.warn, r.dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Run lee comandos línea a línea hasta "done" o EOF.
func (r *Runner) Run(in io.Reader) (Result, error) {
	r.dim.Fprintf(r.out, "Prepare %s (%s, %s)\n", r.ex.Name, r.ex.Dosage, r.ex.Route)
	r.prompt()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		done, err := r.handle(line)
		if err != nil {
			r.warn.Fprintf(r.out, "! %v\n", err)
		}
		if done {
			break
		}
		r.prompt()
	}
	if err := sc.Err(); err != nil {
		return r.result(), err
	}

	r.session.Close()
	return r.result(), nil
}

func (r *Runner) result() Result {
	return Result{Attempts: r.session.Attempts(), LastVerdict: r.session.Verdict()}
}

func (r *Runner) handle(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprintln(r.out, "commands: syringe | cup | + | - | set N | drag Y (0-100) | back | submit | again | done")
		return false, nil
	case "done", "quit", "exit":
		return true, nil
	case "syringe":
		return false, r.session.SelectMethod(dosing.MethodSyringe)
	case "cup":
		return false, r.session.SelectMethod(dosing.MethodCup)
	case "+":
		return false, r.session.Increment()
	case "-":
		return false, r.session.Decrement()
	case "set":
		v, err := numberArg(args)
		if err != nil {
			return false, err
		}
		return false, r.session.SetAmount(v)
	case "drag":
		y, err := numberArg(args)
		if err != nil {
			return false, err
		}
		if err := r.session.PointerDown(y, barrel); err != nil {
			return false, err
		}
		r.session.PointerUp()
		return false, nil
	case "back":
		return false, r.session.Back()
	case "again", "reset":
		return false, r.session.Reset()
	case "submit":
		v, err := r.session.Submit()
		if err != nil {
			return false, err
		}
		r.renderVerdict(v)
		return false, nil
	default:
		return false, errUsage
	}
}

func numberArg(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one number")
	}
	return strconv.ParseFloat(args[0], 64)
}

func (r *Runner) prompt() {
	s := r.session
	switch s.Phase() {
	case dosing.PhaseChoosingMethod:
		fmt.Fprintln(r.out, "Choose a delivery method: syringe | cup")
	case dosing.PhaseFilling:
		fmt.Fprintf(r.out, "%s: %s (max %s)\n",
			s.Method().DisplayName(),
			dosing.FormatAmount(s.Method(), s.Amount(), s.Target()),
			dosing.FormatAmount(s.Method(), s.MaxAmount(), s.Target()),
		)
	case dosing.PhaseShowingResult:
		fmt.Fprintln(r.out, "again | done")
	}
}

func (r *Runner) renderVerdict(v dosing.Verdict) {
	if v.OverallCorrect {
		r.good.Fprintln(r.out, v.Feedback.Title)
		fmt.Fprintln(r.out, dosing.SuccessMessage(r.ex.Dosage, v.Feedback.ChosenMethod))
		return
	}

	r.bad.Fprintln(r.out, v.Feedback.Title)
	if v.Feedback.WrongMethod != "" {
		fmt.Fprintln(r.out, v.Feedback.WrongMethod)
	}
	if v.Feedback.WrongAmount != "" {
		fmt.Fprintln(r.out, v.Feedback.WrongAmount)
	}
}
