package annotation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

// sampleService mirrors the annotated-method teaching example: some methods
// carry the marker prefix, some do not, one is unexported.
type sampleService struct{}

func (s *sampleService) HandleOrder()  {}
func (s *sampleService) HandleExport() {}
func (s *sampleService) Regular()      {}
func (s *sampleService) helper()       {}

//
// -----------------------------------------------------------------------------
// MethodsWithPrefix
// -----------------------------------------------------------------------------

// TestMethodsWithPrefix_FindsMarkedOnly verifies the teaching property: a
// marked method is found by the scan, an unmarked one is not.
func TestMethodsWithPrefix_FindsMarkedOnly(t *testing.T) {
	t.Parallel()

	methods := MethodsWithPrefix(reflect.TypeOf(&sampleService{}), "Handle")
	require.Len(t, methods, 2)

	names := []string{methods[0].Name, methods[1].Name}
	assert.Contains(t, names, "HandleOrder")
	assert.Contains(t, names, "HandleExport")
	assert.NotContains(t, names, "Regular")
}

// TestMethodsWithPrefix_UnexportedInvisible verifies unexported methods never
// match, whatever the prefix.
func TestMethodsWithPrefix_UnexportedInvisible(t *testing.T) {
	t.Parallel()

	methods := MethodsWithPrefix(reflect.TypeOf(&sampleService{}), "helper")
	assert.Empty(t, methods)
}

// TestMethodsWithPrefix_EmptyPrefixMatchesAll verifies the degenerate prefix
// returns the whole exported method set.
func TestMethodsWithPrefix_EmptyPrefixMatchesAll(t *testing.T) {
	t.Parallel()

	methods := MethodsWithPrefix(reflect.TypeOf(&sampleService{}), "")
	assert.Len(t, methods, 3)
}

//
// -----------------------------------------------------------------------------
// MethodsMatching
// -----------------------------------------------------------------------------

// TestMethodsMatching_Predicate verifies arbitrary predicates work, e.g.
// matching on signature instead of name.
func TestMethodsMatching_Predicate(t *testing.T) {
	t.Parallel()

	niladic := MethodsMatching(reflect.TypeOf(&sampleService{}), func(m reflect.Method) bool {
		return m.Type.NumIn() == 1 // receiver only
	})
	assert.Len(t, niladic, 3)
}

// TestMethodsMatching_NilInputs verifies nil type or predicate yield nil.
func TestMethodsMatching_NilInputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MethodsMatching(nil, func(reflect.Method) bool { return true }))
	assert.Nil(t, MethodsMatching(reflect.TypeOf(&sampleService{}), nil))
}
