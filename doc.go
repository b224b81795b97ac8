// Package zerosum is a solver toolkit for two-player zero-sum games:
// finite matrix games and continuous convex-concave games, over exact
// rational or floating scalar arithmetic.
//
// 🚀 What is zerosum?
//
//	A small, generic library that brings together:
//		• Scalar fields: one solver codebase, two number systems (float64 / big.Rat)
//		• Specification parsing: matrix literals and payoff expressions with
//		  located errors and exact symbolic differentiation
//		• Matrix games: validated payoff matrices, mixed strategies,
//		  security levels and pure saddle-point detection
//		• Brown-Robinson: fictitious play with per-iteration value bounds
//		• Saddle iteration: projected subgradient descent/ascent with a
//		  ternary-search duality-gap stopping rule
//
// ✨ Why choose zerosum?
//
//   - Generic by construction – every solver is written once against the
//     field.Elem constraint and instantiates for speed or exactness
//   - Honest termination – reaching the iteration cap is a reported state
//     carrying the best bounds achieved, never a silent failure
//   - Deterministic – smallest-index tie-breaking by default, seeded
//     randomness on request, identical inputs give identical results
//   - Observable – structured per-iteration logging and trace callbacks
//
// Everything is organized under five subpackages:
//
//	field/         — the scalar capability set with Float and Rat instantiations
//	gameparse/     — the specification text: lexer, parser, expression AST
//	matrixgame/    — the finite game model and its best-response queries
//	brownrobinson/ — the fictitious-play solver for matrix games
//	saddle/        — the projected-subgradient solver for continuous games
//
// Quick example:
//
//	rows, _ := gameparse.ParseMatrix[field.Float]("[[1,-1],[-1,1]]")
//	g, _ := matrixgame.New(rows)
//	opts := brownrobinson.DefaultOptions[field.Float](1e-3, 100000)
//	res, _ := brownrobinson.Solve(g, &opts)
//	fmt.Println(res.Value, res.RowStrategy)
//
//	go get github.com/saddlekit/zerosum
package zerosum
