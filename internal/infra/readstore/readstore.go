// Package readstore implements the query-side stores with hand-written SQL
// over pgx. Write-side persistence lives in the repository package.
package readstore

import "strconv"

// argn renders a positional placeholder index for dynamically built queries.
func argn(n int) string {
	return strconv.Itoa(n)
}
