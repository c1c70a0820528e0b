package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic category. Ranges are
// reserved per producer so codes stay stable as phases grow.
type Code uint16

const (
	// UnknownCode is the fallback for diagnostics without a category.
	UnknownCode Code = 0

	// Lexical and syntactic producers (reserved).
	LexInfo Code = 1000
	SynInfo Code = 2000

	// Semantic producers.
	SemaInfo           Code = 3000
	SemaUnresolvedName Code = 3001
	SemaTypeMismatch   Code = 3002
	SemaBadGenericArgs Code = 3003

	// Driver / internal.
	DrvInfo     Code = 9000
	DrvInternal Code = 9001
)

func (c Code) String() string {
	return fmt.Sprintf("KEEL%04d", uint16(c))
}
