/*
File    : minij/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and executes src, returning the captured stdout and the
// evaluator's result object.
func run(t *testing.T, src string) (string, object.Object) {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err, src)

	ev := NewEvaluator()
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	result := ev.Run(prog)
	return buf.String(), result
}

// Scenario 1: operator precedence in a println argument.
func TestScenario_PrecedenceInPrintln(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { println(1 + 2 * 3); } }`)
	assert.Equal(t, "7\n", out)
}

// Scenario 2: a regular for loop accumulating a sum.
func TestScenario_ForLoopSum(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { int s = 0; for (int i = 1; i <= 5; i++) s += i; println(s); } }`)
	assert.Equal(t, "15\n", out)
}

// Scenario 3: constructor + field mutation across two method calls on the
// same instance.
func TestScenario_CounterInstance(t *testing.T) {
	out, _ := run(t, `class Counter { int n; public Counter(int x) { this.n = x; } public int inc() { this.n = this.n + 1; return this.n; } } class M { public static void main() { Counter c = new Counter(10); println(c.inc()); println(c.inc()); } }`)
	assert.Equal(t, "11\n12\n", out)
}

// Scenario 4: string-overloaded + and the length() builtin.
func TestScenario_StringConcatAndLength(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { String s = "ab" + 3 + "c"; println(s); println(s.length()); } }`)
	assert.Equal(t, "ab3c\n5\n", out)
}

// Scenario 5: array construction, element assignment, and .length.
func TestScenario_ArrayConstructAndAccess(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { int[] a = new int[3]; a[0]=7; a[2]=9; println(a[0]+a[2]); println(a.length); } }`)
	assert.Equal(t, "16\n3\n", out)
}

// Scenario 6: try/catch/finally around a division-by-zero runtime error.
func TestScenario_TryCatchFinally(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { try { int x = 1/0; } catch (Exception e) { println("caught"); } finally { println("done"); } } }`)
	assert.Equal(t, "caught\ndone\n", out)
}

func TestShortCircuit_AndDoesNotEvaluateRight(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { boolean b = false && sideEffect(); } static boolean sideEffect() { println("evaluated"); return true; } }`)
	assert.Equal(t, "", out)
}

func TestShortCircuit_OrDoesNotEvaluateRight(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { boolean b = true || sideEffect(); } static boolean sideEffect() { println("evaluated"); return true; } }`)
	assert.Equal(t, "", out)
}

func TestStringConcatenationLaw(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { println(1 + "x"); println("x" + 1); println(true + "y"); } }`)
	assert.Equal(t, "1x\nx1\ntruey\n", out)
}

func TestCanonicalStringFormKeepsDecimalForWholeNumberDouble(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { double d = 5.0; println(d); println("n=" + d); } }`)
	assert.Equal(t, "5.0\nn=5.0\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { int x = 1 / 0; println("unreachable"); } }`)
	assert.Equal(t, "", out)
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	_, result := run(t, `class M { public static void main() { println(missing); } }`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Message, "missing")
}

func TestArrayOutOfBounds(t *testing.T) {
	_, result := run(t, `class M { public static void main() { int[] a = new int[2]; println(a[5]); } }`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Message, "out of range")
}

func TestNegativeArraySizeIsRuntimeErrorNotPanic(t *testing.T) {
	_, result := run(t, `class M { public static void main() { int[] a = new int[0-1]; println(a.length); } }`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Message, "negative array size")
}

func TestSwitchFallThroughUntilBreak(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		int n = 1;
		switch (n) {
			case 1:
			case 2:
				println("one-or-two");
				break;
			default:
				println("other");
		}
	} }`)
	assert.Equal(t, "one-or-two\n", out)
}

func TestSwitchDefaultWhenNoCaseMatches(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		int n = 9;
		switch (n) {
			case 1:
				println("one");
				break;
			default:
				println("other");
		}
	} }`)
	assert.Equal(t, "other\n", out)
}

func TestForEachOverArray(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		int[] a = new int[3];
		a[0] = 1; a[1] = 2; a[2] = 3;
		int sum = 0;
		for (int x : a) sum += x;
		println(sum);
	} }`)
	assert.Equal(t, "6\n", out)
}

func TestMathBuiltins(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		println(Math.abs(-5));
		println(Math.max(3, 7));
	} }`)
	assert.Equal(t, "5\n7\n", out)
}

func TestStringBuiltins(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		String s = "Hello";
		println(s.toUpperCase());
		println(s.substring(1, 3));
		println(s.indexOf("l"));
	} }`)
	assert.Equal(t, "HELLO\nel\n2\n", out)
}

func TestPrefixVsPostfixIncrement(t *testing.T) {
	out, _ := run(t, `class M { public static void main() {
		int i = 5;
		println(i++);
		println(i);
		println(++i);
	} }`)
	assert.Equal(t, "5\n6\n7\n", out)
}

func TestTernaryExpression(t *testing.T) {
	out, _ := run(t, `class M { public static void main() { println(3 > 2 ? "yes" : "no"); } }`)
	assert.Equal(t, "yes\n", out)
}

func TestTopLevelStatementsRunWhenNoMain(t *testing.T) {
	out, _ := run(t, `println(42);`)
	assert.Equal(t, "42\n", out)
}

func TestMainWinsOverTopLevelStatements(t *testing.T) {
	out, _ := run(t, `println("top-level"); class M { public static void main() { println("main"); } }`)
	assert.Equal(t, "main\n", out)
}
