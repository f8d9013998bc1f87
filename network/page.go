package network

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"scoreboard/board"
	"scoreboard/protocol"
	"scoreboard/session"
)

const gridColumns = 10

type pageData struct {
	Message string
	Kind    string // success, error, warning or info
	State   protocol.State
	ShowAll bool
	Grid    [][]protocol.EntrySnapshot
	Export  string
	CanCopy bool
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"seat": func(k int) string { return fmt.Sprintf("%02d", k) },
	"val": func(v *int) string {
		if v == nil {
			return "—"
		}
		return strconv.Itoa(*v)
	},
}).Parse(pageHTML))

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	var msg, kind string
	if s.startupNotice.CompareAndSwap(true, false) {
		msg, kind = "System started; all values were cleared", "info"
	}
	s.render(w, r, msg, kind)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	res := s.applyCode(r.Context(), r.FormValue("code"))
	s.render(w, r, res.Message, resultKind(res))
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	res := s.clearAll(r.Context())
	s.render(w, r, res.Message, resultKind(res))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, msg, kind string) {
	st, err := s.hub.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	export, canCopy := exportText(st)
	data := pageData{
		Message: msg,
		Kind:    kind,
		State:   st,
		ShowAll: r.FormValue("show") == "1",
		Grid:    gridRows(st.Entries, gridColumns),
		Export:  export,
		CanCopy: canCopy,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Println("render:", err)
	}
}

// applyCode turns a typed code into a user-facing result.
func (s *Server) applyCode(ctx context.Context, code string) protocol.Result {
	e, err := s.hub.SubmitCode(ctx, code)
	var (
		formatErr  *board.FormatError
		unknownErr *board.UnknownKeyError
	)
	switch {
	case err == nil:
		return setResult(e, false)
	case session.IsSaveError(err):
		return setResult(e, true)
	case errors.As(err, &formatErr):
		return protocol.Result{Message: "Invalid format: enter 4-5 digits (2-digit seat, then score)"}
	case errors.As(err, &unknownErr):
		return protocol.Result{Message: fmt.Sprintf("Seat %02d is not on the board, please re-enter", unknownErr.Key)}
	default:
		return protocol.Result{Message: err.Error()}
	}
}

func (s *Server) clearAll(ctx context.Context) protocol.Result {
	err := s.hub.ClearAll(ctx)
	switch {
	case err == nil:
		return protocol.Result{OK: true, Message: "All values cleared"}
	case session.IsSaveError(err):
		return protocol.Result{OK: true, Warning: true, Message: "All values cleared" + saveWarning}
	default:
		return protocol.Result{Message: err.Error()}
	}
}

const saveWarning = " (warning: could not save to disk)"

func setResult(e board.Entry, unsaved bool) protocol.Result {
	v := e.Value
	res := protocol.Result{
		OK:      true,
		Warning: unsaved,
		Message: fmt.Sprintf("Seat %02d set to %d", e.Key, e.Value),
		Key:     e.Key,
		Value:   &v,
	}
	if unsaved {
		res.Message += saveWarning
	}
	return res
}

func resultKind(res protocol.Result) string {
	switch {
	case !res.OK:
		return "error"
	case res.Warning:
		return "warning"
	default:
		return "success"
	}
}

// exportText mirrors board.Export for a snapshot.
func exportText(st protocol.State) (string, bool) {
	if st.Filled == 0 {
		return "", false
	}
	values := make([]string, 0, len(st.Entries))
	for _, e := range st.Entries {
		if e.Value == nil {
			values = append(values, "")
			continue
		}
		values = append(values, strconv.Itoa(*e.Value))
	}
	return strings.Join(values, "\n"), true
}

func gridRows(entries []protocol.EntrySnapshot, cols int) [][]protocol.EntrySnapshot {
	var rows [][]protocol.EntrySnapshot
	for len(entries) > cols {
		rows = append(rows, entries[:cols])
		entries = entries[cols:]
	}
	if len(entries) > 0 {
		rows = append(rows, entries)
	}
	return rows
}
