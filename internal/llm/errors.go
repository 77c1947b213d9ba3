package llm

import "errors"

var (
	// ErrOllamaUnavailable means the Ollama server could not be reached.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the model answered but not in the requested shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRejected means the server refused the request with a 4xx status.
	ErrRejected = errors.New("llm request rejected")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
