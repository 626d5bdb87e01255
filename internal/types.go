package internal

// FaultRecord is one row of a board's fault-report sheet.
type FaultRecord struct {
	Member         string
	Component      string
	ComponentIndex string
	ByteOffset     string
	BitOffset      string
	NativeDesc     string
	EnglishDesc    string
}

// LookupRow is a raw (description, code) pair from the shared lookup sheet.
type LookupRow struct {
	Description string
	Code        string
}

// LookupEntry is a lookup row prepared for matching; entries keep their
// source row order.
type LookupEntry struct {
	NormalizedDesc string
	Code           string
}

// OutputRecord is one row of the merged result table. FaultCode is either
// empty or copied verbatim from a LookupEntry. Board is provenance only,
// not part of the written artifact.
type OutputRecord struct {
	ActiveName  string
	InjectExpr  string
	NativeDesc  string
	FaultCode   string
	EnglishDesc string
	Board       string
}

// BoardReport is the result of processing a single board.
type BoardReport struct {
	Board     string
	Records   []OutputRecord
	Matched   int
	Unmatched int
}
