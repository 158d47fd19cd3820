// Package drugs holds drug parameter sets and their concentration models.
//
// Elimination is first order with a renal clearance that depends on urine pH
// through a log-linear relation anchored at a reference pH. Hepatic clearance
// is pH independent.
package drugs
