package configtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { New("") })
	assert.Panics(t, func() { NewLeaf("", "x") })
}

func TestNode_ScalarIgnoredOnceChildrenExist(t *testing.T) {
	n := NewLeaf("configuration", "ignored")
	v, ok := n.Scalar()
	require.True(t, ok)
	assert.Equal(t, "ignored", v)

	n.AddChild("rp.endpoint", "http://x")
	_, ok = n.Scalar()
	assert.False(t, ok, "a node with children must not report a scalar")
}

func TestNode_RepeatedChildrenKeepOrder(t *testing.T) {
	elements := New("additionalClasspathElements")
	elements.AddChild("additionalClasspathElement", "/a.jar")
	elements.AddChild("other", "x")
	elements.AddChild("additionalClasspathElement", "/b.jar")

	assert.Equal(t, 3, elements.Len())
	assert.Equal(t, []string{"/a.jar", "/b.jar"}, elements.Values("additionalClasspathElement"))
	assert.Len(t, elements.ChildrenNamed("additionalClasspathElement"), 2)
	assert.Equal(t, "/a.jar", func() string { v, _ := elements.FindChild("additionalClasspathElement").Scalar(); return v }())
	assert.Nil(t, elements.FindChild("missing"))
}

func TestNode_FindOrAddChild(t *testing.T) {
	root := New("configuration")

	first := root.FindOrAddChild("additionalClasspathElements")
	second := root.FindOrAddChild("additionalClasspathElements")

	assert.Same(t, first, second)
	assert.Equal(t, 1, root.Len())
}

func TestNode_ChildValue(t *testing.T) {
	root := New("project")
	root.AddChild("group", "com.example")
	root.Append(New("empty"))

	v, ok := root.ChildValue("group")
	require.True(t, ok)
	assert.Equal(t, "com.example", v)

	_, ok = root.ChildValue("empty")
	assert.False(t, ok)
	_, ok = root.ChildValue("missing")
	assert.False(t, ok)
}

func TestNode_CloneIsDeep(t *testing.T) {
	orig := New("configuration")
	orig.FindOrAddChild("additionalClasspathElements").AddChild("additionalClasspathElement", "/a.jar")

	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	clone.FindChild("additionalClasspathElements").AddChild("additionalClasspathElement", "/b.jar")
	assert.False(t, orig.Equal(clone))
	assert.Equal(t, 1, orig.FindChild("additionalClasspathElements").Len())
}

func TestNode_Equal(t *testing.T) {
	a := New("c")
	a.AddChild("k", "v")
	b := New("c")
	b.AddChild("k", "v")
	assert.True(t, a.Equal(b))

	b.FindChild("k").SetValue("w")
	assert.False(t, a.Equal(b))

	var nilNode *Node
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestNode_ChildrenReturnsCopy(t *testing.T) {
	root := New("r")
	root.AddChild("a", "1")

	children := root.Children()
	children[0] = New("replaced")

	assert.Equal(t, "a", root.Children()[0].Name())
}

func TestNode_StringRendersXML(t *testing.T) {
	root := New("configuration")
	elements := root.FindOrAddChild("additionalClasspathElements")
	elements.AddChild("additionalClasspathElement", "/a.jar")
	root.Append(New("skip"))

	want := "<configuration>\n" +
		"  <additionalClasspathElements>\n" +
		"    <additionalClasspathElement>/a.jar</additionalClasspathElement>\n" +
		"  </additionalClasspathElements>\n" +
		"  <skip></skip>\n" +
		"</configuration>"
	assert.Equal(t, want, root.String())
}

func TestNode_AppendNilPanics(t *testing.T) {
	assert.Panics(t, func() { New("r").Append(nil) })
}

func TestNode_IsEmpty(t *testing.T) {
	n := New("a")
	assert.True(t, n.IsEmpty())

	n.SetValue("")
	assert.False(t, n.IsEmpty(), "an empty string is still a value")

	parent := New("p")
	parent.Append(New("c"))
	assert.False(t, parent.IsEmpty())
}
