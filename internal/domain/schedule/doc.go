// Package schedule allocates and validates the date intervals of learning
// material cards inside a campaign window.
//
// All functions are pure: they take material lists by value, never retain
// them, and return fresh lists. Normalize is meant to be re-run by the
// caller after every window edit and every add or remove; it is idempotent,
// so running it more often than needed is harmless. Validate must pass
// before a schedule is handed to the submission boundary.
package schedule
