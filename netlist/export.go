package netlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteBLIF writes the module in Berkeley Logic Interchange Format. Only
// 1-bit ports are listed as .inputs and .outputs.
func (m *Module) WriteBLIF(w io.Writer) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	var inputs, outputs []string
	for _, s := range m.signals {
		if s.Name == Const0 || s.Name == Const1 || s.Width != 1 {
			continue
		}

		if s.Input {
			inputs = append(inputs, s.Name)
		}

		if s.Output {
			outputs = append(outputs, s.Name)
		}
	}

	sort.Strings(inputs)
	sort.Strings(outputs)

	line(".model %s", m.Name)
	if len(inputs) > 0 {
		line(".inputs %s", strings.Join(inputs, " "))
	}
	if len(outputs) > 0 {
		line(".outputs %s", strings.Join(outputs, " "))
	}
	line("")

	if _, ok := m.byName[Const0]; ok {
		line(".names %s", Const0)
		line("")
	}
	if _, ok := m.byName[Const1]; ok {
		line(".names %s", Const1)
		line("1")
	}
	line("")

	for _, g := range m.gates {
		in := g.Inputs

		switch g.Op {
		case OpNot:
			line(".names %s %s", in[0], g.Output)
			line("0 1")
		case OpBuf:
			line(".names %s %s", in[0], g.Output)
			line("1 1")
		case OpAnd:
			line(".names %s %s %s", in[0], in[1], g.Output)
			line("11 1")
		case OpOr:
			line(".names %s %s %s", in[0], in[1], g.Output)
			line("1- 1")
			line("-1 1")
		case OpXor:
			line(".names %s %s %s", in[0], in[1], g.Output)
			line("10 1")
			line("01 1")
		case OpMux:
			line(".names %s %s %s %s", in[0], in[1], in[2], g.Output)
			line("11- 1")
			line("0-1 1")
		case OpDFF:
			line(".latch %s %s re %s 0", in[0], g.Output, in[1])
		default:
			return fmt.Errorf("netlist: export: unsupported gate type %q", g.Op)
		}
	}

	line(".end")

	return bw.Flush()
}

type jsonAttributes struct {
	Input  bool `json:"input"`
	Output bool `json:"output"`
	Reg    bool `json:"reg"`
}

type jsonSignal struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Attributes jsonAttributes `json:"attributes"`
}

type jsonGate struct {
	Type   Op       `json:"type"`
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

type jsonModule struct {
	ModuleName string       `json:"module_name"`
	Signals    []jsonSignal `json:"signals"`
	Gates      []jsonGate   `json:"gates"`
}

// WriteJSON writes the module as an indented JSON document.
func (m *Module) WriteJSON(w io.Writer) error {
	doc := jsonModule{
		ModuleName: m.Name,
		Signals:    make([]jsonSignal, 0, len(m.signals)),
		Gates:      make([]jsonGate, 0, len(m.gates)),
	}

	for _, s := range m.signals {
		doc.Signals = append(doc.Signals, jsonSignal{
			Name:  s.Name,
			Width: s.Width,
			Attributes: jsonAttributes{
				Input:  s.Input,
				Output: s.Output,
				Reg:    s.Reg,
			},
		})
	}

	for _, g := range m.gates {
		doc.Gates = append(doc.Gates, jsonGate{
			Type:   g.Op,
			Inputs: g.Inputs,
			Output: g.Output,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return enc.Encode(doc)
}
