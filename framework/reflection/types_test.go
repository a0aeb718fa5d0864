package reflection

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The type registry is process-global, so these tests do not run in parallel
// with each other.

// TestRegisterType_DefaultName verifies the bare type name is used when no
// name is given.
func TestRegisterType_DefaultName(t *testing.T) {
	RegisterType[BankAccount]("")

	typ, ok := TypeByName("BankAccount")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(BankAccount{}), typ)
}

// TestNewByName_ConstructsFreshInstances verifies the Class.forName analogue:
// each call yields a new zero value behind a pointer.
func TestNewByName_ConstructsFreshInstances(t *testing.T) {
	RegisterType[Person]("person")

	a, err := NewByName("person")
	require.NoError(t, err)
	b, err := NewByName("person")
	require.NoError(t, err)

	pa, ok := a.(*Person)
	require.True(t, ok)
	assert.Equal(t, Person{}, *pa)
	assert.NotSame(t, a, b)
}

// TestNewByName_Unknown verifies a typed error for unregistered names.
func TestNewByName_Unknown(t *testing.T) {
	_, err := NewByName("no.such.Type")
	var unknown UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no.such.Type", unknown.Name)
}

// TestRegisterType_Overwrites verifies re-registration replaces the previous
// entry.
func TestRegisterType_Overwrites(t *testing.T) {
	RegisterType[Person]("thing")
	RegisterType[Calculator]("thing")

	typ, ok := TypeByName("thing")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(Calculator{}), typ)
}

// TestRegisteredTypeNames_Sorted verifies the listing is stable.
func TestRegisteredTypeNames_Sorted(t *testing.T) {
	RegisterType[Person]("zzz")
	RegisterType[Person]("aaa")

	names := RegisteredTypeNames()
	assert.True(t, sortedStrings(names))
	assert.Contains(t, names, "aaa")
	assert.Contains(t, names, "zzz")
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
