// Package atom maps semantic propositional atoms to the small positive
// integers a SAT engine works with, and back.
//
// What:
//
//   - Atom: a tagged value with two variants — Flow(position, shape),
//     "this cell takes exactly this flow shape", and Colour(position, c),
//     "this cell holds exactly colour c".
//   - Pool: an owned, mutable registry assigning each distinct Atom a
//     stable positive id on first reference, with reverse lookup.
//
// Why:
//
//   - Clause generation and model decoding both need the same
//     atom↔integer bijection; owning it in one registry (rather than
//     ambient shared state) keeps the contract explicit: ids are issued
//     on first use, are injective, and never change for the lifetime of
//     a solve attempt.
//
// The Pool is not safe for concurrent use; the solve pipeline is
// single-threaded by design.
package atom
