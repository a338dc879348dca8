// Package money keeps monetary amounts in integer minor units (cents) to
// avoid floating point drift across calculation steps.
package money

import "fmt"

// Amount is a monetary amount in integer minor units.
type Amount int64

// FromMajor constructs an Amount from whole currency units.
func FromMajor(units int64) Amount {
	return Amount(units * 100)
}

// Add returns the sum of two amounts.
func (a Amount) Add(other Amount) Amount {
	return a + other
}

// Mul multiplies the amount by an integer factor.
func (a Amount) Mul(n int64) Amount {
	return Amount(int64(a) * n)
}

// Percent возвращает p процентов от суммы, округляя половину от нуля
// Это единственная точка деления во всей денежной арифметике движка
func (a Amount) Percent(p int64) Amount {
	product := int64(a) * p
	if product >= 0 {
		return Amount((product + 50) / 100)
	}
	return Amount((product - 50) / 100)
}

// AddPercent возвращает сумму, увеличенную на p процентов (p может быть отрицательным)
func (a Amount) AddPercent(p int64) Amount {
	return a + a.Percent(p)
}

// IsNegative returns true if the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// String formats the amount as major.minor, e.g. 12550 -> "125.50".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
