// Package nlsql turns natural language questions into executable Snowflake
// SQL. The Translator interface is the seam for plugging in an LLM-backed
// implementation; the default KeywordTranslator is deterministic and covers
// the common "show me my tables / rows from X" requests.
package nlsql

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/frosthollow/snowflake-mcp/internal/database"
)

// Translator converts a natural language question into a single SQL
// statement, or fails with a translation error when no statement can be
// derived confidently.
type Translator interface {
	Translate(ctx context.Context, question string) (string, error)
}

// TableLister provides the table names the translator may match against.
// database.Service satisfies it.
type TableLister interface {
	ListTables(ctx context.Context, schema string) ([]string, error)
	GetDatabaseName() string
	GetSchemaName() string
}

// defaultRowLimit caps generated SELECT statements when the question does
// not name a row count.
const defaultRowLimit = 10

// KeywordTranslator derives SQL from keyword heuristics:
//
//   - "list/show/what are ... tables" becomes SHOW TABLES in the default
//     database and schema
//   - a question mentioning a known table name becomes SELECT * FROM that
//     table, limited to the first number found in the question
//
// Anything else fails translation.
type KeywordTranslator struct {
	lister TableLister
}

func NewKeywordTranslator(lister TableLister) *KeywordTranslator {
	return &KeywordTranslator{lister: lister}
}

// Translate maps question onto a SQL statement.
func (t *KeywordTranslator) Translate(ctx context.Context, question string) (string, error) {
	q := strings.ToLower(question)

	if wantsTableList(q) {
		stmt := "SHOW TABLES"
		if scope := t.scope(); scope != "" {
			stmt = "SHOW TABLES IN " + scope
		}
		slog.Debug("translated question to table listing", "sql", stmt)
		return stmt, nil
	}

	tables, err := t.lister.ListTables(ctx, "")
	if err != nil {
		return "", err
	}
	for _, table := range tables {
		if containsWord(q, strings.ToLower(table)) {
			limit := firstNumber(q, defaultRowLimit)
			stmt := fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit)
			slog.Debug("translated question to table select", "table", table, "sql", stmt)
			return stmt, nil
		}
	}

	return "", database.NewTranslationError(
		fmt.Sprintf("could not derive SQL from %q: no known table is mentioned; ask about a table by name or request a table listing", question))
}

func (t *KeywordTranslator) scope() string {
	db := t.lister.GetDatabaseName()
	schema := t.lister.GetSchemaName()
	switch {
	case db != "" && schema != "":
		return db + "." + schema
	case schema != "":
		return schema
	default:
		return ""
	}
}

func wantsTableList(q string) bool {
	if !strings.Contains(q, "table") {
		return false
	}
	return strings.Contains(q, "list") || strings.Contains(q, "show") || strings.Contains(q, "what are")
}

// containsWord reports whether q mentions word with no letter or digit
// touching it, so table T does not match "today".
func containsWord(q, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(q[start:], word)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordRune(rune(q[i-1]))
		afterIdx := i + len(word)
		after := afterIdx >= len(q) || !isWordRune(rune(q[afterIdx]))
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// firstNumber returns the first integer appearing in q, or fallback.
func firstNumber(q string, fallback int) int {
	for i := 0; i < len(q); i++ {
		if q[i] < '0' || q[i] > '9' {
			continue
		}
		j := i
		for j < len(q) && q[j] >= '0' && q[j] <= '9' {
			j++
		}
		if n, err := strconv.Atoi(q[i:j]); err == nil && n > 0 {
			return n
		}
		i = j
	}
	return fallback
}
