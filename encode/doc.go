// Package encode turns a puzzle definition into propositional clauses.
//
// What:
//
//   - Six pure clause families over flow-shape and colour atoms:
//     ExactlyOneShape, ExactlyOneColour, BorderContainment,
//     EndpointShapes, EndpointColours and AdjacencyConsistency.
//   - Clauses: the concatenation of all six, the full static encoding.
//
// A clause is a []int of signed atom-pool literals: a positive literal
// asserts its atom, a negative literal denies it, and the clause is the
// disjunction of its literals.
//
// Why:
//
//   - The families jointly pin down every local puzzle rule: one shape
//     and one colour per cell, no flow off the board, endpoints as path
//     ends and interior cells as path-through segments, endpoints fixed
//     to their own colour, and shape/colour agreement between linked
//     neighbours.
//
// The encoding is deliberately a relaxation: it admits models in which a
// colour's interior cells close into a loop no endpoint reaches. Global
// connectivity is not efficiently expressible as a fixed clause set
// without path variables, so the solve package eliminates such loops by
// counter-example-guided refinement instead.
//
// All functions issue atom ids through the supplied pool on first use
// and are otherwise side-effect free.
package encode
