// Package calls defines call history records and their display projection.
//
// A CallRecord is the raw shape returned by the calls API. Project maps one
// record to a DisplayRecord: the icon, title, subtitle, formatted duration and
// date, and an optional note summary shown in the calls list. Projection is
// pure; formatting is delegated to a Formatter.
package calls
