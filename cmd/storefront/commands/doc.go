// Package commands defines the storefront CLI.
//
// Commands
//
//   - serve      Serve the landing pages over HTTP
//   - export     Write the landing pages as static HTML files
//   - validate   Check a catalog file and report every problem
//   - dump       Print the built-in catalog as YAML, as a starting point for a catalog file
//
// Settings come from the environment (see pkg/config) and can be overridden
// with flags.
package commands
