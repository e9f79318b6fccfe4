// Package present turns analysis results into human-readable reports and
// canvas highlight instructions.
//
// Every renderer produces a Report: a plain-text summary using the
// graph's vertex labels, plus a Highlights value holding the vertex set
// and the unordered edge-pair set a drawing surface should emphasize.
// The drawing surface itself stays behind the Canvas interface — set
// highlighted vertices, set highlighted edges, clear — so the package
// never depends on any particular UI.
//
// Failure cases never panic or leak Go error strings to the reader:
// FailureReport maps the algorithm packages' sentinel errors to
// descriptive sentences, and the renderers spell out degenerate outcomes
// ("no path found", "no circuit found") in words.
package present
