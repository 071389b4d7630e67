package primary

// Payload is a raw entity payload as submitted by the presentation layer.
// Keys may use the form naming (sizeUnit) or the storage naming (size_unit).
type Payload = map[string]any
