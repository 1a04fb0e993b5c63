// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a gitbox command (add-repo, sync, list-repos,
// etc.) and orchestrates operations across the registry, metadata, link, git
// and github packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the configuration and adapters
//   - Actions are stateless - all state lives on disk
//   - Every error is terminal for the current command: no retries, no rollback.
//     A command that fails midway leaves the successful steps in place, and
//     re-running it is safe because sync, link creation and metadata appends
//     are idempotent.
package actions
