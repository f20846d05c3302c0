package nydos

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// agentRow is one value of the "rows" object in a name/agent payload.
type agentRow struct {
	RecordNum text  `json:"RECORD_NUM"`
	Title     title `json:"TITLE"`
	Agent     text  `json:"AGENT"`
}

// title holds the first line of a TITLE field, which is usually an array
// of strings but occasionally a bare string.
type title string

func (t *title) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var lines []text
		if err := json.Unmarshal(b, &lines); err != nil {
			return err
		}
		if len(lines) > 0 {
			*t = title(lines[0])
		}
		return nil
	}
	var s text
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	*t = title(s)
	return nil
}

// ParseAgentRows extracts the first row of a name/agent listing payload of
// the form {"rows": {"<id>": {"RECORD_NUM": ..., "TITLE": [...], "AGENT": ...}}}.
//
// Rows are read in document order, so "first" means the first key as it
// appears in the payload. Returns ErrNoRows if "rows" is missing or empty.
func ParseAgentRows(data []byte) (*entity.AgentRow, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errParse, err)
		}
		if key != "rows" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: %v", errParse, err)
			}
			continue
		}
		return firstRow(dec)
	}
	return nil, ErrNoRows
}

var errParse = errors.New("nydos: parse agent rows")

func firstRow(dec *json.Decoder) (*entity.AgentRow, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParse, err)
	}
	if tok == nil {
		return nil, ErrNoRows
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: rows is not an object", errParse)
	}
	if !dec.More() {
		return nil, ErrNoRows
	}

	key, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParse, err)
	}
	id, _ := key.(string)

	var row agentRow
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("%w: row %s: %v", errParse, id, err)
	}
	return &entity.AgentRow{
		RecordNum: entity.Clean(row.RecordNum.String()),
		ID:        id,
		Name:      entity.Clean(string(row.Title)),
		Agent:     entity.Clean(row.Agent.String()),
	}, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return ErrNoRows
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errParse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q", errParse, want)
	}
	return nil
}
