package responses

// Envelope is what every domain service returns. Success false means Data is
// the zero value or a safe default and Error is populated.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
