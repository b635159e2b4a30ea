// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/denselu/matrix"
)

const (
	opDecompose = "decompose"
	opInvert    = "invert"
	opTranspose = "transpose"
	opCheck     = "check"
)

// parseData splits a comma-separated list of floats. Blank fields are rejected.
func parseData(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("parse data: empty input")
	}
	fields := strings.Split(raw, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parse data: field %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// inverseResidual returns max |(X·A − I)[i,j]| where X = Invert(a).
func inverseResidual(a *matrix.Dense) (float64, error) {
	X, err := matrix.Invert(a)
	if err != nil {
		return 0, err
	}
	prod, err := matrix.Mul(X, a)
	if err != nil {
		return 0, err
	}
	I, err := matrix.NewSquareIdentity(a.Rows())
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(prod, I)
	if err != nil {
		return 0, err
	}
	worst := 0.0
	for _, v := range diff.Data() {
		worst = math.Max(worst, math.Abs(v))
	}
	log.Debugf("residual over %d entries: %g", len(diff.Data()), worst)

	return worst, nil
}
