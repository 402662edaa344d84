// Package generation turns free-text study notes into flashcard pairs.
//
// A Pipeline renders the notes into a prompt, asks a Generator (a hosted
// language model) for a completion once, and parses the completion into
// pairs. When the model is unavailable or its output cannot be parsed, the
// heuristic Fallback splits the notes into sentences instead. The outcome is
// one of GeneratedResult, FallbackResult or FailedResult.
package generation
