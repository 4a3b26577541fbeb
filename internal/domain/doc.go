// Package domain contains the core entities and value objects of the
// learning-schedule configuration: calendar days, campaign windows and the
// learning material cards that are scheduled inside them. It is independent
// of any storage, transport or user interface.
package domain
