// Package kernel holds the value objects shared by every aggregate of the
// ordering domain.
//
//   - UUID identifies restaurants, menu items and orders. The zero value is
//     invalid, so an identifier that was never assigned is caught by Validate.
//   - Money is an amount in minor currency units. Prices and totals never pass
//     through floating point, which keeps "2 x 10.00 + 1 x 5.00" equal to
//     exactly 25.00 on every machine.
//
// Both types are immutable and safe for concurrent use.
package kernel
