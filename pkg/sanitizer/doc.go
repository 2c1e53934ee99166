// Package sanitizer normalizes client input before validation and storage.
//
// All functions are idempotent: applying them twice yields the same result.
// Invalid input is never rejected here; validation happens afterwards.
//
// Normalization includes:
//   - Names: collapse whitespace, trim
//   - RFC (Mexican tax id): strip spaces and hyphens, upper-case
//   - Emails: trim, lower-case
//   - Phone numbers: E.164 with MX as the default region when parseable
package sanitizer
