// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a hullo command mode (greet, commit and push,
// grid summary) and orchestrates operations across the git, roster, greeting,
// and grid packages.
//
// Key patterns:
//   - Actions accept an options struct carrying their dependencies
//   - Actions are stateless and report progress through the Splog
//   - Git operations go through the git.Runner interface so tests can
//     substitute scripted command results
package actions
