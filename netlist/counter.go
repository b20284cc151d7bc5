package netlist

import (
	"fmt"

	"github.com/sarchlab/counterreg/counter"
)

// Port names of the counter netlist.
const (
	PortClock  = "clk"
	PortReset  = "reset"
	PortEnable = "enable"
	PortCount  = "count"
)

type builder struct {
	m      *Module
	tmpIdx int
	err    error
}

func (b *builder) tmp(prefix string) string {
	name := fmt.Sprintf("tmp_%s_%d", prefix, b.tmpIdx)
	b.tmpIdx++
	b.m.AddSignal(Signal{Name: name, Width: 1})

	return name
}

func (b *builder) gate(op Op, out string, in ...string) {
	if b.err != nil {
		return
	}

	b.err = b.m.AddGate(op, out, in...)
}

// BuildCounter returns the bit-blasted netlist of the 4-bit counter:
//
//	always @(posedge clk)
//	    if (reset) count <= 0;
//	    else if (enable) count <= count + 1;
//
// The incrementer is a ripple-carry adder with the constant 1. Each bit is
// then selected by an enable MUX and a reset MUX in front of its DFF.
func BuildCounter() *Module {
	m := NewModule("counter")
	b := &builder{m: m}

	m.AddSignal(Signal{Name: PortClock, Width: 1, Input: true})
	m.AddSignal(Signal{Name: PortReset, Width: 1, Input: true})
	m.AddSignal(Signal{Name: PortEnable, Width: 1, Input: true})
	q := m.AddBus(Signal{Name: PortCount, Width: counter.Width, Output: true, Reg: true})
	sum := m.AddBus(Signal{Name: "sum", Width: counter.Width})
	m.AddSignal(Signal{Name: Const0, Width: 1})
	m.AddSignal(Signal{Name: Const1, Width: 1})

	one := make([]string, counter.Width)
	for i := range one {
		one[i] = Const0
	}
	one[0] = Const1

	carry := Const0
	for i := 0; i < counter.Width; i++ {
		t1 := b.tmp("xor")
		b.gate(OpXor, t1, q[i], one[i])
		b.gate(OpXor, sum[i], t1, carry)

		ab := b.tmp("and")
		ac := b.tmp("and")
		bc := b.tmp("and")
		b.gate(OpAnd, ab, q[i], one[i])
		b.gate(OpAnd, ac, q[i], carry)
		b.gate(OpAnd, bc, one[i], carry)

		or1 := b.tmp("or")
		b.gate(OpOr, or1, ab, ac)
		next := b.tmp("or")
		b.gate(OpOr, next, or1, bc)
		carry = next
	}

	for i := 0; i < counter.Width; i++ {
		muxEn := b.tmp("mux")
		b.gate(OpMux, muxEn, PortEnable, sum[i], q[i])

		muxRst := b.tmp("mux")
		b.gate(OpMux, muxRst, PortReset, Const0, muxEn)

		b.gate(OpDFF, q[i], muxRst, PortClock)
	}

	if b.err != nil {
		panic(b.err)
	}

	return m
}
