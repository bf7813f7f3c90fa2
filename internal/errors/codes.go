package errors

// Error codes for the cmm compiler, used in messages so diagnostics stay
// identifiable across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0200-E0299: Translation errors

const (
	// E0001: Variable resolution errors
	ErrorUndefinedVariable = "E0001"

	// E0002: Function resolution errors
	ErrorUndefinedFunction = "E0002"

	// E0003: Duplicate declaration errors
	ErrorDuplicateDeclaration = "E0003"

	// E0004: Function call argument errors
	ErrorInvalidArguments = "E0004"

	// E0005: Assignment validation errors
	ErrorInvalidAssignment = "E0005"

	// E0006: Conflicting declaration/definition signatures
	ErrorConflictingDeclaration = "E0006"
)
