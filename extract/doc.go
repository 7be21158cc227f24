// Package extract implements multiline lambda extraction for Python-like
// sources that use the lamdef keyword.
//
// The engine rewrites an indentation-delimited anonymous block
//
//	sorted_users = sorted(users, key=lamdef(user):
//	    priority = user.calculate_priority()
//	    return -priority
//	)
//
// into a named top-level declaration plus a rewritten call site
//
//	def _key_for_users(user):
//	    priority = user.calculate_priority()
//	    return -priority
//	sorted_users = sorted(users, key=_key_for_users)
//
// It operates on raw lines and indentation widths, not a syntax tree.
// Block boundaries follow the offside rule: the block ends at the first
// subsequent line whose indentation returns to, or below, the level of
// the line that opened it. String and comment content is not recognized;
// a line that dedents inside a string literal will be treated as a
// boundary. This is a structural scan, not a lexical one.
//
// # Pipeline
//
// [Extract] runs analyze, resolve, scan, transform, and rewrite against
// an immutable [Snapshot] and returns a pure [Edit] value describing the
// deletion range, the emitted declaration, and the replacement call
// site. Nothing is mutated until [Apply] hands the finished edit to a
// [Buffer]. A failed precondition therefore never leaves a buffer
// partially modified.
//
// # Errors
//
// Three preconditions can fail, each reported through a sentinel:
//
//   - [ErrNotApplicable]: the invocation line has no lamdef keyword
//   - [ErrUnparsableParams]: no balanced parameter list after the keyword
//   - [ErrEmptyBody]: the keyword line has no indented body below it
//
// Name collisions between a derived declaration name and existing
// identifiers are not detected.
package extract
