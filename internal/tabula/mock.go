package tabula

// MockExtractor implements Extractor for testing purposes. It returns
// predefined data instead of running the external tool.
type MockExtractor struct {
	MockText string
	MockErr  error

	// Requested records the paths passed to ExtractTables, in call order.
	Requested []string
}

// NewMockExtractor creates a MockExtractor with the given canned result.
func NewMockExtractor(mockText string, mockErr error) *MockExtractor {
	return &MockExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractTables returns the predefined text or error.
func (e *MockExtractor) ExtractTables(pdfPath string) (string, error) {
	e.Requested = append(e.Requested, pdfPath)
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
