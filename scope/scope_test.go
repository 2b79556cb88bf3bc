package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/susumu-lang/susumu/values"
)

func TestLookUpWalksParentChain(t *testing.T) {
	root := New(nil)
	root.Bind("x", &values.Number{Value: 1}, false)
	child := New(root)

	v, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, float64(1), v.(*values.Number).Value)

	_, ok = child.LookUp("nope")
	assert.False(t, ok)
}

func TestBindOnlyAffectsCurrentScope(t *testing.T) {
	root := New(nil)
	child := New(root)
	child.Bind("x", &values.Number{Value: 1}, false)

	_, ok := root.LookUp("x")
	assert.False(t, ok)
}

func TestAssignUpdatesDefiningScope(t *testing.T) {
	root := New(nil)
	root.Bind("x", &values.Number{Value: 1}, true)
	child := New(root)

	result := child.Assign("x", &values.Number{Value: 2})
	assert.Equal(t, Assigned, result)

	v, _ := root.LookUp("x")
	assert.Equal(t, float64(2), v.(*values.Number).Value)
}

func TestAssignReportsImmutableAndUndefined(t *testing.T) {
	root := New(nil)
	root.Bind("x", &values.Number{Value: 1}, false)

	assert.Equal(t, Immutable, root.Assign("x", &values.Number{Value: 2}))
	assert.Equal(t, Undefined, root.Assign("never-bound", &values.Number{Value: 2}))
}

func TestCopySnapshotsCurrentBindingsButSharesParent(t *testing.T) {
	root := New(nil)
	root.Bind("shared", &values.Number{Value: 9}, false)
	child := New(root)
	child.Bind("local", &values.Number{Value: 1}, true)

	snap := child.Copy()
	snap.Assign("local", &values.Number{Value: 2})

	original, _ := child.LookUp("local")
	copied, _ := snap.LookUp("local")
	assert.Equal(t, float64(1), original.(*values.Number).Value)
	assert.Equal(t, float64(2), copied.(*values.Number).Value)

	v, ok := snap.LookUp("shared")
	assert.True(t, ok)
	assert.Equal(t, float64(9), v.(*values.Number).Value)
}
