// Package diagnostic provides structured errors, warnings and infos for
// chain configuration and resolution reports.
//
// Key capabilities:
//   - Coded messages bound to a subject (a strategy name, a pair)
//   - Suggestions for misspelled names
//   - Conversion of collected errors into a single Go error
package diagnostic
