// Package payroll implements the monthly payroll computation required by
// Guatemalan labor law. Calculate is a pure function: callers validate
// inputs and persist results.
package payroll

import "math"

// Legal constants. The statutory bonus (Decreto 37-2001) is a flat monthly
// amount and is excluded from the IGSS contribution base.
const (
	StatutoryBonus     = 250.00
	SocialSecurityRate = 0.0483
	OvertimeFactor     = 1.5
)

// Inputs are the caller-supplied payroll figures. All values must be >= 0;
// the HTTP validation layer rejects negatives before this package runs.
type Inputs struct {
	BaseSalary      float64
	OvertimeHours   float64
	Commissions     float64
	IncomeTax       float64
	OtherDeductions float64
}

// Result carries the inputs back alongside every computed field, ready to
// persist verbatim. Monetary outputs are rounded to 2 decimals; rounding
// happens only here at the output, never on intermediate values.
type Result struct {
	Inputs

	StatutoryBonus  float64
	OvertimePay     float64
	GrossIncome     float64
	SocialSecurity  float64
	TotalDeductions float64
	NetPay          float64
}

// Calculate derives every payroll amount from the inputs. Deterministic:
// identical inputs always produce identical outputs.
func Calculate(in Inputs) Result {
	// The ordinary hour is 1/8 of 1/30 of the monthly base salary.
	ordinaryHourlyRate := (in.BaseSalary / 30) / 8
	overtimePay := ordinaryHourlyRate * OvertimeFactor * in.OvertimeHours

	grossIncome := in.BaseSalary + overtimePay + in.Commissions + StatutoryBonus

	// The statutory bonus is not subject to IGSS.
	socialSecurityBase := in.BaseSalary + overtimePay + in.Commissions
	socialSecurity := socialSecurityBase * SocialSecurityRate

	totalDeductions := socialSecurity + in.IncomeTax + in.OtherDeductions
	netPay := grossIncome - totalDeductions

	return Result{
		Inputs:          in,
		StatutoryBonus:  StatutoryBonus,
		OvertimePay:     round2(overtimePay),
		GrossIncome:     round2(grossIncome),
		SocialSecurity:  round2(socialSecurity),
		TotalDeductions: round2(totalDeductions),
		NetPay:          round2(netPay),
	}
}

// round2 rounds half-up to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
