// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Package serialize encodes and decodes state vectors as JSON, using
// goccy/go-json in place of encoding/json for the same throughput reasons
// the ecosystem reaches for it on other hot marshal paths.
package serialize

import (
	gojson "github.com/goccy/go-json"

	"github.com/wavefunc/qsim/statevector"
)

// wireState is the on-disk shape: real and imaginary parts split into
// parallel arrays, since encoding/json (and go-json, which matches its
// behavior) has no native complex128 support.
type wireState struct {
	NumQubits int       `json:"num_qubits"`
	Real      []float64 `json:"real"`
	Imag      []float64 `json:"imag"`
}

// Encode serializes sv's amplitudes to JSON.
func Encode(sv *statevector.StateVector) ([]byte, error) {
	vec := sv.Vector()
	w := wireState{
		NumQubits: sv.NumQubits(),
		Real:      make([]float64, len(vec)),
		Imag:      make([]float64, len(vec)),
	}
	for i, a := range vec {
		w.Real[i] = real(a)
		w.Imag[i] = imag(a)
	}
	return gojson.Marshal(w)
}

// Decode parses JSON produced by Encode back into a StateVector.
func Decode(data []byte) (*statevector.StateVector, error) {
	var w wireState
	if err := gojson.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	vec := make([]complex128, len(w.Real))
	for i := range vec {
		vec[i] = complex(w.Real[i], w.Imag[i])
	}
	return statevector.NewFromVector(vec), nil
}
