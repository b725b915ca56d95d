// Package projection computes first-versus-last changes across dated
// projection snapshots and flags players whose projections moved in
// unusual ways.
//
// The pipeline is ComputeChanges -> Classifier.Classify -> report and
// CSV/Excel persistence. Percentage changes are guarded against
// non-positive baselines and all per-day rates are zero when the
// tracked window is a single day.
package projection
