package sqldoc

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/primer/internal/domain"
)

func parseString(t *testing.T, src string) []Case {
	t.Helper()
	cases, err := Parse("inline.sql", strings.NewReader(src))
	require.NoError(t, err)
	return cases
}

func TestParse_Testdata(t *testing.T) {
	f, err := os.Open("testdata/basics.sql")
	require.NoError(t, err)
	defer f.Close()

	cases, err := Parse("testdata/basics.sql", f)
	require.NoError(t, err)
	require.Len(t, cases, 7)

	kinds := make([]CaseKind, len(cases))
	for i, c := range cases {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []CaseKind{KindEquals, KindEquals, KindEquals, KindEquals, KindRaises, KindNone, KindDebug}, kinds)

	first := cases[0]
	assert.Contains(t, first.Setup, "CREATE TABLE people")
	assert.Contains(t, first.Setup, "INSERT INTO people")
	assert.Equal(t, "SELECT name FROM people ORDER BY id;\n", first.Query)
	assert.Equal(t, [][]any{{"Ada"}, {"Grace"}, {"Linus"}}, first.Rows)
	assert.Equal(t, 7, first.Line)

	assert.Equal(t, [][]any{{"Linus", nil}}, cases[2].Rows)
	assert.Equal(t, [][]any{}, cases[1].Rows)
	assert.Contains(t, cases[3].Query, "FROM people;")
	assert.Equal(t, "no such table", cases[4].Answer)
}

func TestParse_SetupOnlyBelongsToNextQuery(t *testing.T) {
	cases := parseString(t, `CREATE TABLE t (x);
SELECT 1;
-- EQUALS [[1]]
INSERT INTO t VALUES (5);
SELECT x FROM t;
-- EQUALS [[5]]
`)
	require.Len(t, cases, 2)
	assert.Equal(t, "CREATE TABLE t (x);\n", cases[0].Setup)
	assert.Equal(t, "INSERT INTO t VALUES (5);\n", cases[1].Setup)
}

func TestParse_MultiLineAnswer(t *testing.T) {
	cases := parseString(t, `SELECT 1, 'a' UNION ALL SELECT 2, 'b';
-- EQUALS [
--   [1, "a"],
--   [2, "b"]
-- ]
`)
	require.Len(t, cases, 1)
	assert.Equal(t, [][]any{{float64(1), "a"}, {float64(2), "b"}}, cases[0].Rows)
}

func TestParse_BlockCommentsIgnored(t *testing.T) {
	cases := parseString(t, `/* SELECT 'not a query';
*/
WITH x AS (SELECT 3 AS v) SELECT v FROM x;
-- EQUALS [[3]]
`)
	require.Len(t, cases, 1)
	assert.Equal(t, KindEquals, cases[0].Kind)
	assert.Equal(t, 3, cases[0].Line)
}

func TestParse_InvalidAnswer(t *testing.T) {
	_, err := Parse("bad.sql", strings.NewReader("SELECT 1;\n-- EQUALS [[1\n"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindParse))
	assert.Contains(t, err.Error(), "bad.sql:1")
}

func TestCase_Title(t *testing.T) {
	c := Case{Line: 4, Query: "SELECT   name\n  FROM people;\n"}
	assert.Equal(t, "line 4: SELECT name FROM people;", c.Title())

	long := Case{Line: 1, Query: "SELECT " + strings.Repeat("x, ", 40) + "y;"}
	assert.LessOrEqual(t, len(long.Title()), len("line 1: ")+60)
	assert.True(t, strings.HasSuffix(long.Title(), "..."))
}

func TestCase_TitleKeepsRunesWhole(t *testing.T) {
	c := Case{Line: 2, Query: "SELECT '" + strings.Repeat("é", 80) + "';"}
	title := c.Title()

	assert.True(t, utf8.ValidString(title))
	assert.True(t, strings.HasSuffix(title, "..."))
	assert.Equal(t, len("line 2: ")+60, utf8.RuneCountInString(title))
}

func TestParse_DashesInsideLiteralStartComment(t *testing.T) {
	cases := parseString(t, "SELECT '--';\nSELECT 1;\n-- EQUALS [[1]]\n")

	// the first line never terminates, so both lines form one query
	require.Len(t, cases, 1)
	assert.Equal(t, 1, cases[0].Line)
	assert.Equal(t, KindEquals, cases[0].Kind)
}
