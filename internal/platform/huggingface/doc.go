// Package huggingface implements generation.Generator against the Hugging
// Face Inference API text-generation endpoint.
package huggingface
