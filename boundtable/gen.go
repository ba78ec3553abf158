package boundtable

// The zz_generated_table_*.go files in this directory are emitted by
// cmd/boundgen, once per supported word width. Re-run after changing the
// enumeration rule in Candidates or the emitted file shape.
//go:generate go run github.com/katalvlaran/genbound/cmd/boundgen -out .
