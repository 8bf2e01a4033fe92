package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// ErrorWithDetails is used for server-side failures where the operator needs
// the underlying cause.
func ErrorWithDetails(message, details string) Envelope {
	return Envelope{"error": message, "details": details}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
