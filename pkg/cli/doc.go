// Package cli provides the command-line interface for fixmatch.
//
// Commands:
//   - check: evaluate one message against criteria and explain a mismatch
//   - run: run the self-checking cases declared in fixture files
//   - validate: check fixture files against the schema and value kinds
//   - describe: print criteria in readable form with their hash
//   - schema: print the JSON Schema for fixture files
//   - version: show fixmatch version
//
// Persistent flags:
//   - --json: machine-readable output
//   - --log-level, --log-format: evaluation diagnostics on stderr
//     (defaults from FIXMATCH_LOG_LEVEL and FIXMATCH_LOG_FORMAT)
//
// Usage:
//
//	fixmatch check criteria.yaml message.yaml
//	fixmatch check --breakdown fixture.yaml
//	fixmatch run ./fixtures
//	fixmatch validate 'fixtures/**/*.yaml'
package cli
