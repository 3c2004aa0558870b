// Package error provides structured error handling for the cmdreg library.
//
// Package: error
// Title: cmdreg Structured Errors
// Description: This package implements a structured Error type carrying an
//              error code, severity, operation name, and a details map while
//              remaining compatible with Go's standard error interface and
//              errors.Is/errors.As unwrapping. The registry core uses it to
//              distinguish the two failure classes of the command registry:
//              leaf collisions (real errors) and table lifecycle faults,
//              while missing names stay benign no-ops and never surface here.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-02
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-02 v0.1.0: Initial implementation with contextual errors
//
// Usage:
//   import regerror "github.com/msto63/cmdreg/core/error"
//
//   err := regerror.New("existing command blocks subcommand path").
//     WithCode(regerror.CodeLeafCollision).
//     WithOperation("AddCommand").
//     WithDetail("name", "ban").
//     WithDetail("subpath", "ban.duration")
//
//   if regerror.IsCode(err, regerror.CodeLeafCollision) {
//     // handle collision
//   }
package error
