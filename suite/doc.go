// Package suite runs the generator comparison end to end:
//
//	config.Configuration ─Build─▶ labelled samplers ─Draw─▶ sequences ─analysis.Compare─▶ Table
//
// Every engine is constructed from the configuration, drawn for exactly
// Samples values and handed to the analyzer. The microphone generator is the
// only one allowed to fail recoverably: when its device is missing or its
// capture is too quiet, the run logs the reason and substitutes the system
// CSPRNG under a label that says so.
package suite
