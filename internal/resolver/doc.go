// Package resolver narrows a user query down to exactly one project.
//
// Resolution is a pure narrowing function over an immutable project
// map, with one print-and-read side effect per interactive round:
//
//   - an empty map fails before any prompting
//   - an exact name match always beats substring matches
//   - a unique substring match resolves without confirmation
//   - several substring matches list only the matched entries and ask
//     the user to narrow further
//
// Ambiguity is never resolved by guessing; the resolver always
// escalates to the user. The final path is re-looked-up in the
// original, unfiltered map so narrowing copies never leak out.
package resolver
