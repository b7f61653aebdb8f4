// Package timezone keeps the application timezone and the date-time
// layouts the API speaks.
//
// Usage:
//
//	timezone.Init("Asia/Shanghai")
//	now := timezone.Now()
//	start, err := timezone.ParseDateTime("2025-03-01 09:00:00")
//	out := timezone.FormatDateTime(&start) // "2025-03-01 09:00:00"
//
// Accepted input layouts are "2006-01-02 15:04:05", "2006-01-02T15:04",
// "2006-01-02T15:04:05" and RFC 3339. Inputs without an offset are read in
// the application timezone. Output always uses "2006-01-02 15:04:05".
//
// The timezone comes from APP_TIMEZONE and falls back to UTC when unset or
// unknown. Use IANA names such as "UTC", "Asia/Shanghai" or "Europe/London".
package timezone
