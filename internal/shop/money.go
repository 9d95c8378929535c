//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package shop

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// SumRounded adds amounts that are already rounded and rounds the result
// again. Orders total their items this way, so a total can drift by a cent
// from rounding the unrounded line amounts once.
func SumRounded(amounts []float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return sum.Round(2).InexactFloat64()
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
