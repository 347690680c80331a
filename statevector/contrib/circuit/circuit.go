// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Package circuit assembles gate matrices from contrib/gates into ordered
// instruction lists and drives them against a statevector.StateVector,
// the "circuit assembly / instruction dispatch" layer that the kernel
// package itself deliberately stays out of.
package circuit

import (
	"fmt"
	"time"

	"github.com/wavefunc/qsim/statevector"
	"github.com/wavefunc/qsim/statevector/contrib/gates"
	"github.com/wavefunc/qsim/statevector/contrib/telemetry"
)

// Instruction is one gate application: Matrix in the caller's own qubit
// order for Qubits, either the 2^K-element diagonal form or the
// 4^K-element dense form. When Matrix is nil, Name is looked up in
// contrib/gates instead (resolveMatrix); Params supplies the rotation
// angle for the parameterized gates (RX/RY/RZ/Phase) in that case. A
// caller that already has a matrix in hand — from a custom unitary, say
// — can skip the lookup entirely by setting Matrix directly, in which
// case Name is used only for logging and error messages.
type Instruction struct {
	Name   string
	Qubits []int
	Matrix []complex128
	Params []float64
}

// Circuit is an ordered list of instructions over a fixed qubit count.
type Circuit struct {
	NumQubits    int
	Instructions []Instruction
}

// New returns an empty circuit over numQubits qubits.
func New(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Append adds an instruction with an explicit matrix to the circuit and
// returns it for chaining.
func (c *Circuit) Append(name string, qubits []int, mat []complex128, params ...float64) *Circuit {
	c.Instructions = append(c.Instructions, Instruction{
		Name:   name,
		Qubits: qubits,
		Matrix: mat,
		Params: params,
	})
	return c
}

// AppendGate adds an instruction with no explicit matrix, to be resolved
// against contrib/gates by name at Run time. params is required for RX,
// RY, RZ, and Phase, and ignored otherwise.
func (c *Circuit) AppendGate(name string, qubits []int, params ...float64) *Circuit {
	c.Instructions = append(c.Instructions, Instruction{
		Name:   name,
		Qubits: qubits,
		Params: params,
	})
	return c
}

// Run applies every instruction in order to sv, recording per-gate and
// per-circuit timings to rec. sv must have NumQubits() == c.NumQubits;
// a mismatch is returned as an error rather than left to
// statevector.ApplyMatrix's panic, since a circuit/state mismatch is a
// caller-assembly error, not a kernel invariant violation.
func (c *Circuit) Run(sv *statevector.StateVector, rec telemetry.Recorder) error {
	if rec == nil {
		rec = telemetry.NoOp()
	}
	if sv.NumQubits() != c.NumQubits {
		return fmt.Errorf("circuit: state vector has %d qubits, circuit expects %d", sv.NumQubits(), c.NumQubits)
	}

	start := time.Now()
	for i, instr := range c.Instructions {
		if err := c.runOne(sv, instr, rec); err != nil {
			return fmt.Errorf("circuit: instruction %d (%s): %w", i, instr.Name, err)
		}
	}
	rec.ObserveCircuit(len(c.Instructions), time.Since(start))
	return nil
}

func (c *Circuit) runOne(sv *statevector.StateVector, instr Instruction, rec telemetry.Recorder) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	mat, err := resolveMatrix(instr)
	if err != nil {
		return err
	}
	gateStart := time.Now()
	sv.ApplyMatrix(instr.Qubits, mat)
	rec.ObserveGate(instr.Name, len(instr.Qubits), time.Since(gateStart))
	return nil
}

// resolveMatrix returns instr.Matrix directly if set, otherwise looks
// instr.Name up in contrib/gates, applying instr.Params[0] for the
// parameterized gates.
func resolveMatrix(instr Instruction) ([]complex128, error) {
	if instr.Matrix != nil {
		return instr.Matrix, nil
	}
	switch instr.Name {
	case "H":
		return gates.H, nil
	case "X":
		return gates.X, nil
	case "Y":
		return gates.Y, nil
	case "Z":
		return gates.Z, nil
	case "S":
		return gates.S, nil
	case "Sdg":
		return gates.Sdg, nil
	case "T":
		return gates.T, nil
	case "Tdg":
		return gates.Tdg, nil
	case "CNOT":
		return gates.CNOTDense, nil
	case "CZ":
		return gates.CZDense, nil
	case "SWAP":
		return gates.SWAPDense, nil
	case "Toffoli":
		return gates.Toffoli, nil
	case "RX", "RY", "RZ", "Phase":
		if len(instr.Params) != 1 {
			return nil, fmt.Errorf("circuit: gate %q needs exactly 1 parameter, got %d", instr.Name, len(instr.Params))
		}
		switch instr.Name {
		case "RX":
			return gates.RX(instr.Params[0]), nil
		case "RY":
			return gates.RY(instr.Params[0]), nil
		case "RZ":
			return gates.RZ(instr.Params[0]), nil
		default:
			return gates.Phase(instr.Params[0]), nil
		}
	default:
		return nil, fmt.Errorf("circuit: instruction has no Matrix and %q is not a known gate name", instr.Name)
	}
}
