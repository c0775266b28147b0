package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		inputs   Inputs
		expected Result
	}{
		{
			name:   "Base Salary With Overtime",
			inputs: Inputs{BaseSalary: 4500, OvertimeHours: 10},
			expected: Result{
				StatutoryBonus:  250.00,
				OvertimePay:     281.25,
				GrossIncome:     5031.25,
				SocialSecurity:  230.93,
				TotalDeductions: 230.93,
				NetPay:          4800.32,
			},
		},
		{
			name:   "Base Salary Only",
			inputs: Inputs{BaseSalary: 3000},
			expected: Result{
				StatutoryBonus:  250.00,
				OvertimePay:     0,
				GrossIncome:     3250.00,
				SocialSecurity:  144.90,
				TotalDeductions: 144.90,
				NetPay:          3105.10,
			},
		},
		{
			name: "Commissions And Deductions",
			inputs: Inputs{
				BaseSalary:      6000,
				OvertimeHours:   4,
				Commissions:     550,
				IncomeTax:       150,
				OtherDeductions: 75,
			},
			expected: Result{
				StatutoryBonus:  250.00,
				OvertimePay:     150.00,
				GrossIncome:     6950.00,
				SocialSecurity:  323.61,
				TotalDeductions: 548.61,
				NetPay:          6401.39,
			},
		},
		{
			name:   "Zero Salary",
			inputs: Inputs{},
			expected: Result{
				StatutoryBonus:  250.00,
				OvertimePay:     0,
				GrossIncome:     250.00,
				SocialSecurity:  0,
				TotalDeductions: 0,
				NetPay:          250.00,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.inputs)

			assert.Equal(t, tt.inputs, result.Inputs)
			assert.Equal(t, tt.expected.StatutoryBonus, result.StatutoryBonus)
			assert.Equal(t, tt.expected.OvertimePay, result.OvertimePay)
			assert.Equal(t, tt.expected.GrossIncome, result.GrossIncome)
			assert.Equal(t, tt.expected.SocialSecurity, result.SocialSecurity)
			assert.Equal(t, tt.expected.TotalDeductions, result.TotalDeductions)
			assert.Equal(t, tt.expected.NetPay, result.NetPay)
		})
	}
}

func TestCalculateStatutoryBonusExcludedFromSocialSecurity(t *testing.T) {
	// The IGSS contribution is computed over salary, overtime and
	// commissions only; adding the bonus to the base would overcharge
	// every employee by Q12.08 a month.
	result := Calculate(Inputs{BaseSalary: 5000})
	assert.Equal(t, 241.50, result.SocialSecurity)
}

func TestCalculateDeterministic(t *testing.T) {
	inputs := Inputs{BaseSalary: 4321.99, OvertimeHours: 7.5, Commissions: 123.45}

	first := Calculate(inputs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(inputs))
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 230.93, round2(230.934375))
	assert.Equal(t, 4800.32, round2(4800.315625))
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, 0.0, round2(0))
}
