package mock

import (
	"context"
	"strings"
)

// Canned responses returned by the default generator behavior. Both are
// well-formed per the analysis parsers so pipeline tests get realistic
// structured results without injecting custom functions.
const (
	defaultAnalysisResponse = `RINGKASAN LATAR BELAKANG
Peraturan ini disusun untuk memperkuat pelindungan data pribadi.

POIN-POIN UTAMA
- Kewajiban pendaftaran pengendali data (Pasal 3)
- Sanksi administratif bagi pelanggaran (Pasal 12)

DAMPAK BISNIS
Pelaku usaha wajib menyesuaikan proses pengolahan data dalam waktu dua tahun.

CHECKLIST KEPATUHAN
- [ ] Tunjuk petugas pelindungan data (Pasal 5)
- [ ] Susun catatan aktivitas pengolahan

TINGKAT KEYAKINAN
85%`

	defaultSectorResponse = `Sector: banking
Impact Level: high
Rationale: Bank memproses data nasabah dalam skala besar.
Confidence: 0.9

Sector: fintech
Impact Level: medium
Rationale: Penyelenggara fintech tunduk pada kewajiban yang sama.
Confidence: 0.8`
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default canned-response behavior.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
	prompts   []string
}

// NewMockGenerator creates a mock generator with default canned responses.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns a canned response matching the kind of prompt received.
// Prompts mentioning "Impact Level" get a sector classification response;
// everything else gets a narrative analysis response.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	if strings.Contains(prompt, "Impact Level") {
		return defaultSectorResponse, nil
	}
	return defaultAnalysisResponse, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Prompts returns the prompts received so far, in call order.
func (m *MockGenerator) Prompts() []string {
	return m.prompts
}

// Reset clears the call history and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.prompts = nil
	m.GenerateFunc = nil
}
