// Package analysis holds the backend's text heuristics: keyword-bucket
// sentiment scoring, script based language detection and small text
// normalisation helpers. Everything here is pure and safe for concurrent use.
package analysis
