// Package config reads noise settings from environment variables.
//
// Every reader degrades to a default or a clamped value instead of returning
// an error, so a misconfigured host process keeps running unaffected.
package config
