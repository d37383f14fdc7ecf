// Package config provides configuration loading, merging, and validation
// facilities for the upload stager.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source are filled from [Default].
//
// The main entry points are [GetStructuredConfig] for the staging server and
// [GetClientConfig] for the terminal stager.
package config
