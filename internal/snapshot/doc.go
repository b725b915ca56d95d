// Package snapshot manages the dated projection snapshot history: writing
// one CSV per pull date and player universe, and loading the accumulated
// files back into a single long-form table for longitudinal analysis.
package snapshot
