// Package logging configures the global logrus logger from LogSettings.
//
// Output is discarded unless a destination is configured, which keeps an
// injected library silent inside its host process.
package logging
