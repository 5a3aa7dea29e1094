package usecase

import "github.com/iho/bankledger/internal/domain"

// HeaderStatus is the outcome of looking for a sheet's header row.
type HeaderStatus int

const (
	HeaderFound HeaderStatus = iota
	HeaderEmpty
	HeaderUnparsable
)

func (s HeaderStatus) String() string {
	switch s {
	case HeaderFound:
		return "found"
	case HeaderEmpty:
		return "empty"
	default:
		return "unparsable"
	}
}

// LocateHeader tries the first probes rows as header. A row is accepted when
// it names its second column; banner rows above a table leave that cell blank.
// A sheet without any value is empty.
func LocateHeader(g domain.Grid, probes int) (int, HeaderStatus) {
	for row := 0; row < probes; row++ {
		cols := g.Header(row)
		if len(cols) == 0 {
			if row == 0 {
				return 0, HeaderEmpty
			}
			break
		}
		if len(cols) < 2 || !domain.IsPlaceholder(cols[1]) {
			return row, HeaderFound
		}
	}
	return 0, HeaderUnparsable
}
