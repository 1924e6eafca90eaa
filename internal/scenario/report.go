package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type jsonOutcome struct {
	Line         int    `json:"line"`
	Start        string `json:"start"`
	Instructions string `json:"instructions"`
	Result       string `json:"result,omitempty"`
	Error        string `json:"error,omitempty"`
}

type jsonReport struct {
	RunID    string        `json:"run_id"`
	Wall     string        `json:"wall,omitempty"`
	Error    string        `json:"error,omitempty"`
	Outcomes []jsonOutcome `json:"outcomes"`
}

// WriteText prints one line per spider: its result or "Error: <msg>".
func (r *Report) WriteText(w io.Writer) error {
	for _, o := range r.Outcomes {
		line := o.Spider.Result()
		if err := o.Err(); err != nil {
			line = "Error: " + err.Error()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		RunID:    r.RunID,
		Outcomes: make([]jsonOutcome, 0, len(r.Outcomes)),
	}
	if err := r.Wall.Err(); err != nil {
		out.Error = err.Error()
	} else {
		out.Wall = r.Wall.String()
	}
	for _, o := range r.Outcomes {
		jo := jsonOutcome{
			Line:         o.Line,
			Start:        strings.TrimSpace(o.Start),
			Instructions: strings.TrimSpace(o.Instructions),
		}
		if err := o.Err(); err != nil {
			jo.Error = err.Error()
		} else {
			jo.Result = o.Spider.Result()
		}
		out.Outcomes = append(out.Outcomes, jo)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
