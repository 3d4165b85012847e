package vocab

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// ParseSpreadsheet reads word pairs from the first sheet of an .xlsx
// workbook: column A is the word, column B the definition. A first row whose
// cells read "word" and "definition" is treated as a header. Rows with an
// empty word are skipped, same as ParseVocabulary.
func ParseSpreadsheet(r io.Reader) ([]domain.WordPair, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	pairs := make([]domain.WordPair, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		word := strings.TrimSpace(row[0])
		definition := strings.TrimSpace(row[1])
		if i == 0 && isHeaderRow(word, definition) {
			continue
		}
		if word == "" {
			continue
		}
		pairs = append(pairs, domain.WordPair{Word: word, Definition: definition})
	}
	return pairs, nil
}

func isHeaderRow(word, definition string) bool {
	return strings.EqualFold(word, "word") && strings.EqualFold(definition, "definition")
}
