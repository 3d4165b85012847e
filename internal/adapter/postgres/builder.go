package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder that emits $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
