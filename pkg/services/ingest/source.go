package ingest

import (
	"io"
	"strings"

	"github.com/bi-tools/campaign-costs/pkg/services/normalize"
)

// Kind routes an uploaded source to the pipeline that understands it.
type Kind int

const (
	// KindIgnored marks sources whose name matches no known feed.
	KindIgnored Kind = iota
	// KindAnalytic is the row-level delivery-event feed.
	KindAnalytic
	// KindSynthetic is the pre-aggregated per-account tarification feed.
	KindSynthetic
)

func (k Kind) String() string {
	switch k {
	case KindAnalytic:
		return "analytic"
	case KindSynthetic:
		return "synthetic"
	default:
		return "ignored"
	}
}

// Source is one uploaded file: a name used for routing plus its
// content.
type Source struct {
	Name   string
	Reader io.Reader
}

// DetectKind infers the feed kind from the source name. The name is
// folded first, so "Sintético" and "sintetico" route identically.
func DetectKind(name string) Kind {
	folded := normalize.Fold(name)
	switch {
	case strings.Contains(folded, "analytic"):
		return KindAnalytic
	case strings.Contains(folded, "sintetico"):
		return KindSynthetic
	default:
		return KindIgnored
	}
}

// IsXLSX reports whether the source should be read as a spreadsheet
// workbook rather than delimited text.
func IsXLSX(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xlsx")
}
