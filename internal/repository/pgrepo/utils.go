package pgrepo

// rowScanner покрывает pgx.Row и pgx.Rows, чтобы scan-хелперы работали и для
// одиночных, и для списочных запросов.
type rowScanner interface {
	Scan(dest ...any) error
}
