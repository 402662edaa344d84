// Package gemini implements generation.Generator with Google's Gemini API
// through the google.golang.org/genai client.
package gemini
