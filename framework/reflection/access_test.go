package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// FieldValue
// -----------------------------------------------------------------------------

// TestFieldValue_Unexported verifies unexported fields are readable — the
// counterpart of Java's setAccessible(true).
func TestFieldValue_Unexported(t *testing.T) {
	t.Parallel()

	acct := NewBankAccount("ACC-001", 500.00)

	got, err := FieldValue(acct, "balance")
	require.NoError(t, err)
	assert.Equal(t, 500.00, got)

	num, err := FieldValue(acct, "accountNumber")
	require.NoError(t, err)
	assert.Equal(t, "ACC-001", num)
}

// TestFieldValue_Missing verifies a typed error for unknown field names.
func TestFieldValue_Missing(t *testing.T) {
	t.Parallel()

	_, err := FieldValue(&Person{}, "nickname")
	var notFound FieldNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nickname", notFound.Field)
}

// TestFieldValue_NotPointer verifies struct values are rejected: reading
// through the unsafe path needs an addressable target.
func TestFieldValue_NotPointer(t *testing.T) {
	t.Parallel()

	_, err := FieldValue(Person{}, "name")
	assert.ErrorIs(t, err, ErrNotPointer)

	_, err = FieldValue(nil, "name")
	assert.ErrorIs(t, err, ErrNilTarget)
}

//
// -----------------------------------------------------------------------------
// SetField
// -----------------------------------------------------------------------------

// TestSetField_UniversalSetter verifies fields are writable by name, the
// unexported ones included.
func TestSetField_UniversalSetter(t *testing.T) {
	t.Parallel()

	p := &Person{}
	require.NoError(t, SetField(p, "name", "Alice"))
	require.NoError(t, SetField(p, "age", 30))

	assert.Equal(t, "Alice", p.Name())
	assert.Equal(t, 30, p.Age())
}

// TestSetField_OverwritesPrivateState verifies the classic demo: rewriting a
// private balance from outside the type's methods.
func TestSetField_OverwritesPrivateState(t *testing.T) {
	t.Parallel()

	acct := NewBankAccount("ACC-001", 500.00)
	require.NoError(t, SetField(acct, "balance", 99999.0))
	assert.Equal(t, 99999.0, acct.Balance())
}

// TestSetField_Converts verifies convertible values are converted rather than
// rejected (int into a float64 field).
func TestSetField_Converts(t *testing.T) {
	t.Parallel()

	acct := &BankAccount{}
	require.NoError(t, SetField(acct, "balance", 42))
	assert.Equal(t, 42.0, acct.Balance())
}

// TestSetField_TypeMismatch verifies non-convertible values produce a typed
// AssignError.
func TestSetField_TypeMismatch(t *testing.T) {
	t.Parallel()

	err := SetField(&Person{}, "age", "not a number")
	var assign AssignError
	require.ErrorAs(t, err, &assign)
	assert.Equal(t, "age", assign.Field)
}

// TestSetField_NilClearsPointerLikeFields verifies nil zeroes pointer-like
// fields and is rejected for scalars.
func TestSetField_NilClearsPointerLikeFields(t *testing.T) {
	t.Parallel()

	type holder struct {
		Ref  *Person
		Tags []string
		N    int
	}
	h := &holder{Ref: &Person{}, Tags: []string{"a"}}

	require.NoError(t, SetField(h, "Ref", nil))
	assert.Nil(t, h.Ref)

	require.NoError(t, SetField(h, "Tags", nil))
	assert.Nil(t, h.Tags)

	err := SetField(h, "N", nil)
	var assign AssignError
	assert.ErrorAs(t, err, &assign)
}

//
// -----------------------------------------------------------------------------
// FieldValues
// -----------------------------------------------------------------------------

// TestFieldValues_DumpsEverything verifies the full field dump, unexported
// values included.
func TestFieldValues_DumpsEverything(t *testing.T) {
	t.Parallel()

	p := NewPerson("John", 25)
	values, err := FieldValues(p)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "John", "age": 25}, values)
}
