// Package server runs the stager's HTTP server together with its background
// workers, and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
