/*
File    : minij/serialize/serializer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package serialize

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/akashmaji946/minij/parser"
)

func serializeSource(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err, src)
	return Program(prog)
}

func TestIntLitHasValueField(t *testing.T) {
	out := serializeSource(t, `println(7);`)
	root := gjson.Parse(out)
	lit := root.Get("children.0.children.0.children.0")
	assert.Equal(t, "IntLit", lit.Get("type").String())
	assert.Equal(t, int64(7), lit.Get("value").Int())
}

func TestBinOpHasOperatorAndTwoChildren(t *testing.T) {
	out := serializeSource(t, `println(1 + 2);`)
	call := gjson.Get(out, "children.0.children.0.children.0")
	assert.Equal(t, "BinOp", call.Get("type").String())
	assert.Equal(t, "+", call.Get("operator").String())
	assert.Equal(t, int64(1), call.Get("children.0.value").Int())
	assert.Equal(t, int64(2), call.Get("children.1.value").Int())
}

func TestMethodCallHasMethodNameAndArgsAsChildren(t *testing.T) {
	out := serializeSource(t, `println(1, 2);`)
	call := gjson.Get(out, "children.0.children.0")
	assert.Equal(t, "MethodCall", call.Get("type").String())
	assert.Equal(t, "println", call.Get("method").String())
	assert.Equal(t, int64(2), call.Get("children.#").Int())
}

func TestVarDeclHasVarTypeNameAndInitializerChild(t *testing.T) {
	out := serializeSource(t, `int x = 5;`)
	decl := gjson.Get(out, "children.0")
	assert.Equal(t, "VarDecl", decl.Get("type").String())
	assert.Equal(t, "int", decl.Get("varType").String())
	assert.Equal(t, "x", decl.Get("name").String())
	assert.Equal(t, "IntLit", decl.Get("children.0.type").String())
}

func TestIfHasTaggedConditionThenElseChildren(t *testing.T) {
	out := serializeSource(t, `if (1 < 2) println(1); else println(2);`)
	ifNode := gjson.Get(out, "children.0")
	assert.Equal(t, "If", ifNode.Get("type").String())
	assert.Equal(t, "condition", ifNode.Get("children.0.type").String())
	assert.Equal(t, "then", ifNode.Get("children.1.type").String())
	assert.Equal(t, "else", ifNode.Get("children.2.type").String())
}

func TestForHasTaggedInitConditionUpdateBody(t *testing.T) {
	out := serializeSource(t, `for (int i = 0; i < 3; i++) println(i);`)
	forNode := gjson.Get(out, "children.0")
	assert.Equal(t, "For", forNode.Get("type").String())
	tags := []string{}
	forNode.Get("children").ForEach(func(_, v gjson.Result) bool {
		tags = append(tags, v.Get("type").String())
		return true
	})
	assert.Equal(t, []string{"init", "condition", "update", "body"}, tags)
}

func TestClassDeclHasNameExtendsFieldsThenMethods(t *testing.T) {
	out := serializeSource(t, `class Animal { } class Dog extends Animal { int legs; public void bark() { } }`)
	dog := gjson.Get(out, "children.1")
	assert.Equal(t, "ClassDecl", dog.Get("type").String())
	assert.Equal(t, "Dog", dog.Get("name").String())
	assert.Equal(t, "Animal", dog.Get("extends").String())
	assert.Equal(t, "FieldDecl", dog.Get("children.0.type").String())
	assert.Equal(t, "MethodDecl", dog.Get("children.1.type").String())
}

func TestAnyOtherVariantIsTypeTagOnlyWithEmptyChildren(t *testing.T) {
	out := serializeSource(t, `class M { public static void main() { break; } }`)
	brk := gjson.Get(out, `children.0.children.0.children.0`)
	assert.Equal(t, "Break", brk.Get("type").String())
	assert.Equal(t, int64(0), brk.Get("children.#").Int())
}

func TestErrorRecordShape(t *testing.T) {
	out := ErrorRecord("boom")
	assert.Equal(t, "Error", gjson.Get(out, "type").String())
	assert.Equal(t, "boom", gjson.Get(out, "message").String())
	assert.Equal(t, int64(0), gjson.Get(out, "children.#").Int())
}

func TestDepthCapEmitsPlaceholder(t *testing.T) {
	src := "println(1"
	for i := 0; i < MaxDepth+10; i++ {
		src += " + 1"
	}
	src += ");"
	out := serializeSource(t, src)
	assert.Contains(t, out, placeholderType)
}

func TestSerializedScenariosSnapshot(t *testing.T) {
	sources := map[string]string{
		"precedence": `class M { public static void main() { println(1 + 2 * 3); } }`,
		"forLoop":    `class M { public static void main() { int s = 0; for (int i = 1; i <= 5; i++) s += i; println(s); } }`,
		"counter":    `class Counter { int n; public Counter(int x) { this.n = x; } public int inc() { this.n = this.n + 1; return this.n; } } class M { public static void main() { Counter c = new Counter(10); println(c.inc()); } }`,
	}
	for name, src := range sources {
		out := serializeSource(t, src)
		snaps.MatchSnapshot(t, name, out)
	}
}
