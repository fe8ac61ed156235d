// Package services holds domain logic that spans more than one aggregate.
//
// The package includes:
//   - OrderComposer: turns a diner's requested lines into an Order by
//     snapshotting names and prices from the restaurant's menu and
//     cross-checking the prices and total the diner saw.
package services
