// Package keysync fills keys that are missing from locale documents by
// translating the baseline values, and rewrites the documents in a
// normalized key order.
//
// A Merger works on one document at a time. It walks the baseline and
// compares it to the target. Missing reserved keys are copied verbatim and
// other missing keys are translated through a bounded group of workers.
// Results are applied to the target only after every task for that
// document has settled. If a translation fails, the baseline value is used
// and the failure is recorded in the Report.
//
//	m := keysync.NewMerger(translator, keysync.WithConcurrency(4))
//	report, err := m.Merge(ctx, baseline, target, "de")
//
// A Syncer applies a Merger to every locale file in a directory:
//
//	s := keysync.NewSyncer(m, keysync.WithBaselineFile("en.json"))
//	summary, err := s.Run(ctx, "./locales")
package keysync
