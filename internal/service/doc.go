// Package service provides the application-level editing session for
// learning-material schedules.
//
// A Draft owns one schedule while a user edits it. It drives the interval
// allocator from internal/domain/schedule in response to edits:
//
//   - Window changes and list-shape changes (add, remove) re-derive every
//     card's interval.
//   - Direct date edits are stored as entered; validation reports the
//     overlaps they cause.
//   - Preview lookups run outside the draft's lock and are applied only if the
//     card still holds the code that was looked up.
//   - Submit validates first and reaches the Submitter only with a valid schedule.
//
// Collaborators (PreviewResolver, Submitter) are interfaces supplied by the
// caller, so the package performs no I/O of its own.
package service
